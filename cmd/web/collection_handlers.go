package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rawnaq.store/web/internal/catalog"
	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/nav"
	"rawnaq.store/web/internal/seo"
)

// CollectionsIndexHandler lists every known collection.
func (app *application) CollectionsIndexHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := app.basePageData(r, app.t(lang, "collections.title"))
	vm.Collections = map[string]any{
		"Summaries": buildCollectionSummaries(lang, app.catalog.Collections(r.Context())),
	}
	app.fillSEO(r, &vm, app.t(lang, "collections.description"))
	app.render.renderPage(w, r, vm)
}

// CollectionHandler renders one collection's grid page. The token may be an
// id or a slugged name; resolution never errors, so the page always paints.
func (app *application) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := app.buildCollectionView(r, chi.URLParam(r, "token"))

	title := view.Title
	if title == "" {
		title = app.t(lang, "collections.fallbackTitle")
	}
	vm := app.basePageData(r, title)
	if view.Identified && view.Title != "" {
		vm.Breadcrumbs = nav.RelabelLast(vm.Breadcrumbs, view.Title)
	}
	vm.Collection = view

	desc := view.Description
	if desc == "" {
		desc = app.t(lang, "collections.description")
	}
	app.fillSEO(r, &vm, desc)
	if !view.Identified {
		vm.SEO.Robots = "noindex"
	}
	entries := make([]seo.ItemListEntry, 0, len(view.Products))
	for _, p := range view.Products {
		entries = append(entries, seo.ItemListEntry{Name: p.Name})
	}
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.ItemList(title, entries)))

	app.render.renderPage(w, r, vm)
}

// CollectionGridFrag re-renders only the product grid, used by the sort
// select over htmx. The address bar is kept in sync via HX-Push-Url.
func (app *application) CollectionGridFrag(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	view := app.buildCollectionView(r, token)

	push := "/collections/" + token
	if view.Sort != string(catalog.SortName) {
		push += "?sort=" + view.Sort
	}
	w.Header().Set("HX-Push-Url", push)
	app.render.renderTemplate(w, r, "frag_product_grid", view)
}

func (app *application) buildCollectionView(r *http.Request, token string) CollectionView {
	lang := mw.Lang(r)
	s := mw.GetSession(r)

	res := app.catalog.Collection(r.Context(), token)
	sortKey := catalog.ParseSortKey(r.URL.Query().Get("sort"))
	catalog.SortProducts(res.Products, sortKey, lang)

	view := CollectionView{
		Lang:       lang,
		Token:      token,
		Identified: res.Collection != nil,
		FromStatic: res.FromStatic,
		Sort:       string(sortKey),
		Products:   buildProductCards(lang, s, res.Products),
	}
	if res.Collection != nil {
		view.Title = res.Collection.Name.Resolve(lang)
		view.Description = res.Collection.Description.Resolve(lang)
		view.Image = res.Collection.Image
	}
	return view
}
