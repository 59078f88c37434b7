package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects a product ordering on grid pages.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey maps a query parameter to a sort key, defaulting to name.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh:
		return SortKey(s)
	default:
		return SortName
	}
}

// SortProducts orders products in place. Name sorting collates in the display
// language so Arabic names order naturally; price sorts are numeric. All
// orders are stable, so equal keys keep their upstream order.
func SortProducts(ps []Product, key SortKey, lang string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	default:
		col := collate.New(collationTag(lang))
		sort.SliceStable(ps, func(i, j int) bool {
			return col.CompareString(ps[i].Name.Resolve(lang), ps[j].Name.Resolve(lang)) < 0
		})
	}
}

// SortNewest orders products newest first, for category previews.
func SortNewest(ps []Product) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
}

func collationTag(lang string) language.Tag {
	if lang == "en" {
		return language.English
	}
	return language.Arabic
}
