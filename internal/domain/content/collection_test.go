package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/content"
)

func collectionAvecItems(t *testing.T, ids ...string) *content.CollectionContent {
	t.Helper()
	items := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		items = append(items, map[string]any{"id": id, "title": id})
	}
	raw, err := json.Marshal(map[string]any{"items": items})
	require.NoError(t, err)
	c, err := content.HydrateCollection(raw)
	require.NoError(t, err)
	return c
}

func TestHydrateCollection_BlobVide(t *testing.T) {
	c, err := content.HydrateCollection(nil)
	require.NoError(t, err)

	assert.Equal(t, content.DefaultCarouselConfig(), c.CarouselConfig)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 0, c.Items[0].Order)
}

func TestHydrateCollection_ConserveLesClesInconnues(t *testing.T) {
	raw := json.RawMessage(`{"legacyBanner": "oui", "carouselConfig": {"gap": 24}}`)
	c, err := content.HydrateCollection(raw)
	require.NoError(t, err)

	assert.Equal(t, 24, c.CarouselConfig.Gap)
	assert.Equal(t, 4000, c.CarouselConfig.Interval, "clé absente = défaut")

	out, err := json.Marshal(c)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Contains(t, m, "legacyBanner")
	assert.Contains(t, m, "items")
}

// Après tout réordonnancement, item.Order == index pour chaque position.
func TestSetItems_RenumeroteOrder(t *testing.T) {
	c := collectionAvecItems(t, "a", "b", "c", "d")

	reordered := []content.CollectionItem{c.Items[3], c.Items[1], c.Items[0], c.Items[2]}
	c.SetItems(reordered)

	require.Len(t, c.Items, 4)
	for i, it := range c.Items {
		assert.Equal(t, i, it.Order, "item %s", it.ID)
	}
	assert.Equal(t, "d", c.Items[0].ID)
}

func TestAddItem_OrderEgalLongueur(t *testing.T) {
	c := collectionAvecItems(t, "a", "b")
	it := c.AddItem()
	assert.Equal(t, 2, it.Order)
	assert.Len(t, c.Items, 3)
}

func TestDuplicateItem_AjouteEnFin(t *testing.T) {
	c := collectionAvecItems(t, "a", "b")
	dup, err := c.DuplicateItem("a")
	require.NoError(t, err)

	assert.Len(t, c.Items, 3)
	assert.NotEqual(t, "a", dup.ID)
	assert.Equal(t, "a", dup.Title, "le titre d'un item dupliqué n'est pas suffixé")
	assert.Equal(t, 2, dup.Order)
}

func TestRemoveItem_CardinaliteEtRenumerotation(t *testing.T) {
	c := collectionAvecItems(t, "a")
	assert.ErrorIs(t, c.RemoveItem("a"), domain.ErrLastItem)
	assert.Len(t, c.Items, 1)

	c = collectionAvecItems(t, "a", "b", "c")
	require.NoError(t, c.RemoveItem("b"))
	require.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, "c", c.Items[1].ID)
	assert.Equal(t, 0, c.Items[0].Order)
	assert.Equal(t, 1, c.Items[1].Order)
}
