package handlers

import (
	"rawnaq.store/web/internal/nav"
	"rawnaq.store/web/internal/seo"
)

// PageData is the shared view model for every page using the base layout.
type PageData struct {
	Title     string
	Lang      string
	Dir       string // writing direction: "rtl" or "ltr"
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Navbar badge counts from the session.
	CartCount     int
	WishlistCount int
	CSRFToken     string

	// Per-page view model payloads. The base layout picks the page body by
	// whichever of these is set.
	Home        any
	Collections any
	Collection  any
	Categories  any
	Category    any
	Cart        any
	FAQ         any
	Content     any
}
