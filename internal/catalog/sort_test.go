package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProductList(t *testing.T, raw string) []Product {
	t.Helper()
	var list []Product
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	return list
}

func TestSortProductsByPrice(t *testing.T) {
	prods := decodeProductList(t, `[
		{"id":1,"name":"c","price":30},
		{"id":2,"name":"a","price":10},
		{"id":3,"name":"b","price":20}
	]`)

	SortProducts(prods, SortPriceLow, "ar")
	assert.Equal(t, []int64{2, 3, 1}, productIDs(prods))

	SortProducts(prods, SortPriceHigh, "ar")
	assert.Equal(t, []int64{1, 3, 2}, productIDs(prods))
}

func TestSortProductsByPriceStable(t *testing.T) {
	prods := decodeProductList(t, `[
		{"id":1,"price":10},
		{"id":2,"price":10},
		{"id":3,"price":5}
	]`)
	SortProducts(prods, SortPriceLow, "ar")
	assert.Equal(t, []int64{3, 1, 2}, productIDs(prods), "equal prices keep upstream order")
}

func TestSortProductsByName(t *testing.T) {
	prods := decodeProductList(t, `[
		{"id":1,"name_en":"Watch","name_ar":"ساعة"},
		{"id":2,"name_en":"Bag","name_ar":"حقيبة"},
		{"id":3,"name_en":"Phone","name_ar":"هاتف"}
	]`)

	SortProducts(prods, SortName, "en")
	assert.Equal(t, []int64{2, 3, 1}, productIDs(prods))

	SortProducts(prods, SortName, "ar")
	assert.Equal(t, []int64{2, 1, 3}, productIDs(prods))
}

func TestSortNewest(t *testing.T) {
	prods := decodeProductList(t, `[
		{"id":1,"createdAt":"2026-01-01T00:00:00Z"},
		{"id":2,"createdAt":"2026-03-01T00:00:00Z"},
		{"id":3,"createdAt":"2026-02-01T00:00:00Z"}
	]`)
	SortNewest(prods)
	assert.Equal(t, []int64{2, 3, 1}, productIDs(prods))
	assert.True(t, prods[0].CreatedAt.After(time.Time{}))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortPriceHigh, ParseSortKey("price-high"))
	assert.Equal(t, SortName, ParseSortKey("name"))
	assert.Equal(t, SortName, ParseSortKey(""))
	assert.Equal(t, SortName, ParseSortKey("bogus"))
}

func productIDs(ps []Product) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
