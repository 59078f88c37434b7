package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/nav"
)

const categoryPreviewCount = 4

// CategoriesIndexHandler lists the catalog categories.
func (app *application) CategoriesIndexHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := app.basePageData(r, app.t(lang, "categories.title"))
	vm.Categories = map[string]any{
		"Summaries": buildCategorySummaries(lang, app.catalog.Categories(r.Context())),
	}
	app.fillSEO(r, &vm, app.t(lang, "categories.description"))
	app.render.renderPage(w, r, vm)
}

// CategoryHandler renders one category's product page.
func (app *application) CategoryHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	token := chi.URLParam(r, "token")

	cat, ok := app.catalog.Category(r.Context(), token)
	if !ok {
		app.NotFoundHandler(w, r)
		return
	}
	view := CategoryView{
		Lang:          lang,
		Token:         token,
		Title:         cat.Name.Resolve(lang),
		Description:   cat.Description.Resolve(lang),
		Image:         cat.Image,
		Subcategories: buildSubcategorySummaries(lang, app.catalog.Categories(r.Context()), cat.ID),
		Products:      buildProductCards(lang, mw.GetSession(r), app.catalog.CategoryProducts(r.Context(), cat, 0)),
	}

	vm := app.basePageData(r, view.Title)
	vm.Breadcrumbs = nav.RelabelLast(vm.Breadcrumbs, view.Title)
	vm.Category = view

	desc := view.Description
	if desc == "" {
		desc = app.t(lang, "categories.description")
	}
	app.fillSEO(r, &vm, desc)
	app.render.renderPage(w, r, vm)
}

// CategoryPreviewFrag renders the newest few products of a category, used by
// hover previews on the categories index.
func (app *application) CategoryPreviewFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	token := chi.URLParam(r, "token")

	cat, ok := app.catalog.Category(r.Context(), token)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	view := CategoryView{
		Lang:     lang,
		Token:    token,
		Title:    cat.Name.Resolve(lang),
		Products: buildProductCards(lang, mw.GetSession(r), app.catalog.CategoryProducts(r.Context(), cat, categoryPreviewCount)),
	}
	app.render.renderTemplate(w, r, "frag_category_preview", view)
}
