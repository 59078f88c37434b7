package main

import (
	"fmt"
	"strings"

	"rawnaq.store/web/internal/catalog"
	"rawnaq.store/web/internal/format"
	mw "rawnaq.store/web/internal/middleware"
)

// ProductCard is the view model for one product tile in a grid or strip.
type ProductCard struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Original    string // struck-through price, empty when not discounted
	Image       string
	Available   bool
	Wishlisted  bool
	InCart      bool
}

// CollectionView powers the collection page and its grid fragment.
type CollectionView struct {
	Lang        string
	Token       string
	Title       string
	Description string
	Image       string
	Identified  bool
	FromStatic  bool
	Sort        string
	Products    []ProductCard
}

// CategoryView powers the category page and its preview fragment.
type CategoryView struct {
	Lang          string
	Token         string
	Title         string
	Description   string
	Image         string
	Subcategories []CategorySummary
	Products      []ProductCard
}

// CollectionSummary is one tile on the collections index and home strip.
type CollectionSummary struct {
	Token string
	Title string
	Image string
}

// CategorySummary is one tile on the categories index and home strip.
type CategorySummary struct {
	Token string
	Title string
	Image string
}

func buildProductCards(lang string, s *mw.SessionData, prods []catalog.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(prods))
	for _, p := range prods {
		cards = append(cards, ProductCard{
			ID:          p.ID,
			Name:        p.Name.Resolve(lang),
			Description: p.Description.Resolve(lang),
			Price:       format.Price(p.Price, lang),
			Original:    format.Discount(p.Price, p.OriginalPrice, lang),
			Image:       p.MainImage,
			Available:   p.IsAvailable,
			Wishlisted:  s.InWishlist(p.ID),
			InCart:      inCart(s, p.ID),
		})
	}
	return cards
}

func inCart(s *mw.SessionData, productID int64) bool {
	for _, line := range s.Cart {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}

func buildCollectionSummaries(lang string, list []catalog.Collection) []CollectionSummary {
	out := make([]CollectionSummary, 0, len(list))
	for _, c := range list {
		if !c.Valid() {
			continue
		}
		out = append(out, CollectionSummary{
			Token: collectionToken(c),
			Title: c.Name.Resolve(lang),
			Image: c.Image,
		})
	}
	return out
}

func collectionToken(c catalog.Collection) string {
	if id := c.RouteID(); id != "" {
		return id
	}
	return c.Name.Resolve("ar")
}

// buildCategorySummaries lists top-level categories for menus and strips. The
// upstream "themes" grouping is an internal bucket, not a shopping category.
func buildCategorySummaries(lang string, list []catalog.Category) []CategorySummary {
	out := make([]CategorySummary, 0, len(list))
	for _, c := range list {
		if c.ParentID != nil {
			continue
		}
		if strings.EqualFold(c.Name.Resolve("en"), "themes") {
			continue
		}
		out = append(out, CategorySummary{
			Token: fmt.Sprintf("%d", c.ID),
			Title: c.Name.Resolve(lang),
			Image: c.Image,
		})
	}
	return out
}

// buildSubcategorySummaries lists the children of one category.
func buildSubcategorySummaries(lang string, list []catalog.Category, parentID int64) []CategorySummary {
	out := make([]CategorySummary, 0, len(list))
	for _, c := range list {
		if c.ParentID == nil || *c.ParentID != parentID {
			continue
		}
		out = append(out, CategorySummary{
			Token: fmt.Sprintf("%d", c.ID),
			Title: c.Name.Resolve(lang),
			Image: c.Image,
		})
	}
	return out
}
