package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCollections(t *testing.T, raw string) []Collection {
	t.Helper()
	var list []Collection
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	return list
}

func TestMatchCollectionByForms(t *testing.T) {
	list := decodeCollections(t, `[
		{"_id":"663f1a","id":5001,"name_ar":"العروض الجديدة","name_en":"New Offers"},
		{"_id":"663f1b","id":5002,"name_ar":"ثيمات","name_en":"Themes"}
	]`)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"primary id", "663f1b", "663f1b"},
		{"legacy id as string", "5001", "663f1a"},
		{"arabic slug", "العروض-الجديده", "663f1a"},
		{"english slug", "themes", "663f1b"},
		{"unslugged arabic name", "العروض الجديدة", "663f1a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCollection(tt.token, list)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestMatchCollectionPrecedence(t *testing.T) {
	// the first entry's English name slugs to the second entry's primary id;
	// the id match must win even though the slug entry comes first
	list := decodeCollections(t, `[
		{"_id":"a1","name_en":"best sellers"},
		{"_id":"best-sellers","name_en":"Other"}
	]`)
	got, ok := MatchCollection("best-sellers", list)
	require.True(t, ok)
	assert.Equal(t, "best-sellers", got.ID)
}

func TestMatchCollectionNumericLegacy(t *testing.T) {
	// legacy id arrives as a string upstream but the route token is numeric
	list := decodeCollections(t, `[{"_id":"a1","id":"7003","name_en":"Sale"}]`)
	got, ok := MatchCollection("7003", list)
	require.True(t, ok)
	assert.Equal(t, "a1", got.ID)
}

func TestMatchCollectionMisses(t *testing.T) {
	list := decodeCollections(t, `[{"_id":"a1","id":5001,"name_ar":"ثيمات"}]`)
	for _, token := range []string{"", "   ", "9999", "unknown", "ثيم"} {
		_, ok := MatchCollection(token, list)
		assert.False(t, ok, "token %q", token)
	}
	_, ok := MatchCollection("a1", nil)
	assert.False(t, ok)
}

func TestMatchCategory(t *testing.T) {
	var list []Category
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":10,"name_ar":"أجهزة","name_en":"Devices"},
		{"id":11,"name_ar":"ثيمات","name_en":"Themes"}
	]`), &list))

	got, ok := MatchCategory("11", list)
	require.True(t, ok)
	assert.Equal(t, int64(11), got.ID)

	got, ok = MatchCategory("اجهزه", list)
	require.True(t, ok)
	assert.Equal(t, int64(10), got.ID)

	got, ok = MatchCategory("devices", list)
	require.True(t, ok)
	assert.Equal(t, int64(10), got.ID)

	_, ok = MatchCategory("missing", list)
	assert.False(t, ok)
}
