package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActiveState(t *testing.T) {
	items := Build("/collections/5002")
	require.Len(t, items, len(Main))
	for _, it := range items {
		assert.Equal(t, it.Href == "/collections", it.Active, "item %s", it.Href)
	}
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/collections/new-arrivals")
	require.Len(t, crumbs, 3)
	assert.Equal(t, "nav.home", crumbs[0].LabelKey)
	assert.Equal(t, "nav.collections", crumbs[1].LabelKey)
	assert.Equal(t, "New arrivals", crumbs[2].Label)
	assert.True(t, crumbs[2].Active)
}

func TestBreadcrumbsHome(t *testing.T) {
	crumbs := Breadcrumbs("/")
	require.Len(t, crumbs, 1)
	assert.True(t, crumbs[0].Active)
}

func TestRelabelLast(t *testing.T) {
	crumbs := Breadcrumbs("/collections/5002")
	crumbs = RelabelLast(crumbs, "ثيمات")
	assert.Equal(t, "ثيمات", crumbs[len(crumbs)-1].Label)
	assert.Empty(t, crumbs[len(crumbs)-1].LabelKey)
}
