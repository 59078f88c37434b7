package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rawnaq.store/web/internal/faq"
	"rawnaq.store/web/internal/format"
	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/nav"
	"rawnaq.store/web/internal/pages"
)

// FAQHandler renders the frequently asked questions page.
func (app *application) FAQHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := app.basePageData(r, app.t(lang, "faq.title"))
	vm.FAQ = faq.List(lang)
	app.fillSEO(r, &vm, app.t(lang, "faq.description"))
	app.render.renderPage(w, r, vm)
}

// AboutHandler renders the about page from content markdown.
func (app *application) AboutHandler(w http.ResponseWriter, r *http.Request) {
	app.contentPage(w, r, "about", "index")
}

// PolicyHandler renders one policy document.
func (app *application) PolicyHandler(w http.ResponseWriter, r *http.Request) {
	app.contentPage(w, r, "policies", chi.URLParam(r, "slug"))
}

func (app *application) contentPage(w http.ResponseWriter, r *http.Request, kind, slug string) {
	lang := mw.Lang(r)

	page, err := app.pages.Get(kind, slug, lang)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			app.NotFoundHandler(w, r)
			return
		}
		app.log.Error("content page load failed", zap.String("kind", kind), zap.String("slug", slug), zap.Error(err))
		http.Error(w, "content error", http.StatusInternalServerError)
		return
	}

	rendered, err := pages.Render(page.Body)
	if err != nil {
		app.log.Error("content page render failed", zap.String("kind", kind), zap.String("slug", slug), zap.Error(err))
		http.Error(w, "content error", http.StatusInternalServerError)
		return
	}

	vm := app.basePageData(r, page.Title)
	vm.Breadcrumbs = nav.RelabelLast(vm.Breadcrumbs, page.Title)
	vm.Content = map[string]any{
		"Page":      page,
		"Body":      rendered.HTML,
		"TOC":       rendered.TOC,
		"Effective": format.Date(page.EffectiveDate, lang),
		"Updated":   format.Date(page.UpdatedAt, lang),
	}

	desc := page.SEO.Description
	if desc == "" {
		desc = page.Summary
	}
	app.fillSEO(r, &vm, desc)
	if page.SEO.Title != "" {
		vm.SEO.Title = page.SEO.Title
	}
	app.render.renderPage(w, r, vm)
}
