package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDecodeTolerance(t *testing.T) {
	raw := `{
		"id": "42",
		"name_ar": "هاتف",
		"name_en": "Phone",
		"price": "199.5",
		"originalPrice": 250,
		"categoryId": 3,
		"subcategoryId": null,
		"images": ["a.jpg", "b.jpg"],
		"createdAt": "2026-01-15T10:00:00Z"
	}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, "هاتف", p.Name.Resolve("ar"))
	assert.Equal(t, "Phone", p.Name.Resolve("en"))
	assert.Equal(t, 199.5, p.Price)
	assert.Equal(t, 250.0, p.OriginalPrice)
	assert.True(t, p.IsAvailable, "availability defaults to true")
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, int64(3), *p.CategoryID)
	assert.Nil(t, p.SubcategoryID)
	assert.Equal(t, "a.jpg", p.MainImage, "first image stands in for a missing mainImage")
	assert.Equal(t, 2026, p.CreatedAt.Year())
}

func TestProductDecodeGarbage(t *testing.T) {
	for _, raw := range []string{`null`, `42`, `"x"`, `[1]`, `{"id":{"nested":true}}`} {
		var p Product
		assert.NoError(t, json.Unmarshal([]byte(raw), &p), "fixture: %s", raw)
	}
}

func TestProductSnapshotRoundTrip(t *testing.T) {
	raw := `{"id":7,"name":{"ar":"ساعة","en":"Watch"},"price":80,"isAvailable":false,"mainImage":"w.jpg"}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	encoded, err := json.Marshal(p)
	require.NoError(t, err)
	var back Product
	require.NoError(t, json.Unmarshal(encoded, &back))

	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Name.Resolve("ar"), back.Name.Resolve("ar"))
	assert.Equal(t, p.Name.Resolve("en"), back.Name.Resolve("en"))
	assert.Equal(t, p.Price, back.Price)
	assert.Equal(t, p.IsAvailable, back.IsAvailable)
	assert.Equal(t, p.MainImage, back.MainImage)
}

func TestCollectionDecode(t *testing.T) {
	raw := `{
		"_id": "663f1b",
		"id": 5002,
		"name_ar": "ثيمات",
		"type": "Manual",
		"products": [1, "2", 3],
		"conditions": [{"field":"brand","value":"Acme"},{"key":"tags","value":"sale"}]
	}`
	var c Collection
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, "663f1b", c.ID)
	assert.Equal(t, int64(5002), c.LegacyID)
	assert.Equal(t, "5002", c.LegacyIDRaw)
	assert.Equal(t, "manual", c.Type)
	assert.Equal(t, []int64{1, 2, 3}, c.ProductIDs)
	require.Len(t, c.Conditions, 2)
	assert.Equal(t, Condition{Field: "brand", Value: "Acme"}, c.Conditions[0])
	assert.Equal(t, Condition{Field: "tags", Value: "sale"}, c.Conditions[1])
	assert.True(t, c.Valid())
	assert.Equal(t, "663f1b", c.RouteID())
}

func TestCollectionValidity(t *testing.T) {
	var empty Collection
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, empty.Valid())

	var named Collection
	require.NoError(t, json.Unmarshal([]byte(`{"name":{"ar":"عروض"}}`), &named))
	assert.True(t, named.Valid())
}

func TestProductConditionMatching(t *testing.T) {
	raw := `{"id":1,"brand":"Acme","tags":["sale","new"],"stock":5}`
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.True(t, p.Matches([]Condition{{Field: "brand", Value: "acme"}}), "scalar compare is case-insensitive")
	assert.True(t, p.Matches([]Condition{{Field: "tags", Value: "sale"}}), "array membership")
	assert.True(t, p.Matches([]Condition{{Field: "stock", Value: "5"}}), "numbers compare by literal form")
	assert.False(t, p.Matches([]Condition{{Field: "tags", Value: "old"}}))
	assert.False(t, p.Matches([]Condition{{Field: "missing", Value: "x"}}))
	assert.False(t, p.Matches([]Condition{{Field: "brand", Value: "acme"}, {Field: "tags", Value: "old"}}),
		"all conditions must hold")
	assert.True(t, p.Matches(nil))
}
