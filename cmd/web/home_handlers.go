package main

import (
	"net/http"

	"rawnaq.store/web/internal/faq"
	"rawnaq.store/web/internal/handlers"
	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/seo"
)

const homeFeaturedCount = 8

// HomeHandler renders the landing page: collection strip, category strip,
// and a featured product grid.
func (app *application) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	ctx := r.Context()

	vm := app.basePageData(r, app.t(lang, "home.title"))
	vm.Home = handlers.HomeData{
		Tagline:     app.t(lang, "home.tagline"),
		Collections: buildCollectionSummaries(lang, app.catalog.Collections(ctx)),
		Categories:  buildCategorySummaries(lang, app.catalog.Categories(ctx)),
		Featured:    buildProductCards(lang, s, app.catalog.Featured(ctx, homeFeaturedCount)),
		FAQ:         faq.List(lang),
	}
	app.fillSEO(r, &vm, app.t(lang, "home.description"))
	brand := app.t(lang, "brand.name")
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.Organization(brand, app.cfg.BaseURL, "")),
		seo.JSON(seo.WebSite(brand, app.cfg.BaseURL)),
	)
	app.render.renderPage(w, r, vm)
}

// NotFoundHandler renders the localized 404 page.
func (app *application) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := app.basePageData(r, app.t(lang, "error.notfound.title"))
	vm.SEO.Robots = "noindex"
	w.WriteHeader(http.StatusNotFound)
	app.render.renderTemplate(w, r, "not_found", vm)
}
