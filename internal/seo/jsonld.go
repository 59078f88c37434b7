package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v for embedding in a ld+json script block. The template.JS
// type keeps html/template from re-escaping the payload as a string literal.
// It returns an empty value on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ProductOffer describes one product's commercial terms for Product schema.
type ProductOffer struct {
	Price     float64
	Currency  string
	Available bool
}

// Product returns a Product schema payload with an Offer when price is set.
func Product(name, description, url, imageURL string, offer *ProductOffer) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if offer != nil {
		availability := "https://schema.org/InStock"
		if !offer.Available {
			availability = "https://schema.org/OutOfStock"
		}
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         offer.Price,
			"priceCurrency": offer.Currency,
			"availability":  availability,
		}
	}
	return m
}

// ItemListEntry names one member of a grid page for ItemList schema.
type ItemListEntry struct {
	Name string
	URL  string
}

// ItemList builds schema.org ItemList for collection and category grids.
func ItemList(name string, entries []ItemListEntry) map[string]any {
	el := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		item := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     e.Name,
		}
		if e.URL != "" {
			item["url"] = e.URL
		}
		el = append(el, item)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"itemListElement": el,
	}
}
