package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rawnaq.store/web/internal/catalog"
	"rawnaq.store/web/internal/events"
	"rawnaq.store/web/internal/format"
	mw "rawnaq.store/web/internal/middleware"
)

// CartHandler renders the cart page from session lines joined against the
// resolved product set.
func (app *application) CartHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)

	type cartRow struct {
		ProductCard
		Qty       int
		LineTotal string
	}
	catalogAll := app.catalog.Featured(r.Context(), 0)
	byID := make(map[int64]int, len(catalogAll))
	for i, p := range catalogAll {
		byID[p.ID] = i
	}

	rows := make([]cartRow, 0, len(s.Cart))
	var total float64
	for _, line := range s.Cart {
		idx, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		p := catalogAll[idx]
		cards := buildProductCards(lang, s, []catalog.Product{p})
		total += p.Price * float64(line.Qty)
		rows = append(rows, cartRow{
			ProductCard: cards[0],
			Qty:         line.Qty,
			LineTotal:   format.Price(p.Price*float64(line.Qty), lang),
		})
	}

	vm := app.basePageData(r, app.t(lang, "cart.title"))
	vm.Cart = map[string]any{
		"Rows":  rows,
		"Total": format.Price(total, lang),
		"Empty": len(rows) == 0,
	}
	app.fillSEO(r, &vm, app.t(lang, "cart.description"))
	vm.SEO.Robots = "noindex"
	app.render.renderPage(w, r, vm)
}

// CartCountFrag renders the navbar cart badge.
func (app *application) CartCountFrag(w http.ResponseWriter, r *http.Request) {
	app.render.renderTemplate(w, r, "frag_cart_badge", map[string]any{
		"Count": mw.GetSession(r).CartCount(),
	})
}

// WishlistCountFrag renders the navbar wishlist badge.
func (app *application) WishlistCountFrag(w http.ResponseWriter, r *http.Request) {
	app.render.renderTemplate(w, r, "frag_wishlist_badge", map[string]any{
		"Count": mw.GetSession(r).WishlistCount(),
	})
}

// CartAddHandler adds a product to the session cart and notifies open pages.
func (app *application) CartAddHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := formProductID(r)
	if !ok {
		app.rejectProduct(w, r)
		return
	}
	qty, _ := strconv.Atoi(r.PostFormValue("qty"))

	s := mw.GetSession(r)
	s.AddToCart(productID, qty)
	app.bus.Publish(events.TopicCart, productID)

	w.Header().Set("HX-Trigger", "cart:changed")
	app.render.renderTemplate(w, r, "frag_cart_badge", map[string]any{"Count": s.CartCount()})
}

// CartRemoveHandler drops a product line from the session cart.
func (app *application) CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := formProductID(r)
	if !ok {
		app.rejectProduct(w, r)
		return
	}

	s := mw.GetSession(r)
	if s.RemoveFromCart(productID) {
		app.bus.Publish(events.TopicCart, productID)
	}

	w.Header().Set("HX-Trigger", "cart:changed")
	app.render.renderTemplate(w, r, "frag_cart_badge", map[string]any{"Count": s.CartCount()})
}

// WishlistToggleHandler flips wishlist membership for a product.
func (app *application) WishlistToggleHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := formProductID(r)
	if !ok {
		app.rejectProduct(w, r)
		return
	}

	s := mw.GetSession(r)
	added := s.ToggleWishlist(productID)
	app.bus.Publish(events.TopicWishlist, productID)

	w.Header().Set("HX-Trigger", "wishlist:changed")
	app.render.renderTemplate(w, r, "frag_wishlist_toggle", map[string]any{
		"Lang":       mw.Lang(r),
		"ProductID":  productID,
		"Wishlisted": added,
		"Count":      s.WishlistCount(),
	})
}

// rejectProduct answers a malformed cart or wishlist mutation. Pages listening
// for the toast event show it without leaving the current view.
func (app *application) rejectProduct(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	trigger, _ := json.Marshal(map[string]any{
		"toast": map[string]string{"message": app.t(lang, "toast.invalidProduct")},
	})
	w.Header().Set("HX-Trigger", string(trigger))
	http.Error(w, "invalid product", http.StatusBadRequest)
}

func formProductID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PostFormValue("productId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
