package apiclient_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain/content"
	"github.com/marchand/boutique-api/pkg/apiclient"
)

// fakeCollectionAPI garde le dernier PUT, ou échoue si failPut.
type fakeCollectionAPI struct {
	items   []content.CollectionItem
	config  content.CarouselConfig
	failPut bool
}

func newFakeCollectionAPI(items ...content.CollectionItem) *fakeCollectionAPI {
	return &fakeCollectionAPI{items: items, config: content.DefaultCarouselConfig()}
}

func (f *fakeCollectionAPI) GetCollectionItems(ctx context.Context, sectionID string) (*dto.CollectionItemsResponse, error) {
	rawItems, _ := json.Marshal(f.items)
	rawConfig, _ := json.Marshal(f.config)
	return &dto.CollectionItemsResponse{SectionID: sectionID, Items: rawItems, CarouselConfig: rawConfig}, nil
}

func (f *fakeCollectionAPI) PutCollectionItems(ctx context.Context, sectionID string, in dto.CollectionItemsRequest) (*dto.CollectionItemsResponse, error) {
	if f.failPut {
		return nil, assert.AnError
	}
	var items []content.CollectionItem
	if err := json.Unmarshal(in.Items, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Order = i
	}
	f.items = items
	if len(in.CarouselConfig) > 0 {
		if err := json.Unmarshal(in.CarouselConfig, &f.config); err != nil {
			return nil, err
		}
	}
	return f.GetCollectionItems(ctx, sectionID)
}

func seedEditor(t *testing.T) (*apiclient.CollectionEditor, *fakeCollectionAPI) {
	t.Helper()
	api := newFakeCollectionAPI(
		content.CollectionItem{ID: "i1", Title: "Bagues", Order: 0},
		content.CollectionItem{ID: "i2", Title: "Colliers", Order: 1},
	)
	editor := apiclient.NewCollectionEditor(api, "sec-1")
	require.NoError(t, editor.Load(context.Background()))
	return editor, api
}

func TestCollectionEditor_Load_EtatPropre(t *testing.T) {
	editor, _ := seedEditor(t)

	assert.False(t, editor.Dirty())
	items := editor.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Bagues", items[0].Title)
}

func TestCollectionEditor_Modification_PuisSave(t *testing.T) {
	editor, api := seedEditor(t)

	ok := editor.UpdateItem("i2", func(it *content.CollectionItem) {
		it.Title = "Colliers précieux"
	})
	require.True(t, ok)
	assert.True(t, editor.Dirty())

	require.NoError(t, editor.Save(context.Background()))
	assert.False(t, editor.Dirty())
	assert.Equal(t, "Colliers précieux", api.items[1].Title)
}

func TestCollectionEditor_EchecSave_ConserveLEtatLocal(t *testing.T) {
	editor, api := seedEditor(t)
	api.failPut = true

	editor.UpdateItem("i1", func(it *content.CollectionItem) {
		it.Title = "Bagues or"
	})

	err := editor.Save(context.Background())
	require.Error(t, err)

	// l'état local survit à l'échec et reste sale pour une nouvelle tentative
	assert.True(t, editor.Dirty())
	assert.Equal(t, "Bagues or", editor.Items()[0].Title)

	// le serveur se rétablit, la même modification est rejouée
	api.failPut = false
	require.NoError(t, editor.Save(context.Background()))
	assert.False(t, editor.Dirty())
	assert.Equal(t, "Bagues or", api.items[0].Title)
}

func TestCollectionEditor_SetItems_Renumerote(t *testing.T) {
	editor, api := seedEditor(t)

	items := editor.Items()
	// inversion manuelle (drag and drop)
	editor.SetItems([]content.CollectionItem{items[1], items[0]})

	local := editor.Items()
	assert.Equal(t, "i2", local[0].ID)
	assert.Equal(t, 0, local[0].Order)
	assert.Equal(t, "i1", local[1].ID)
	assert.Equal(t, 1, local[1].Order)

	require.NoError(t, editor.Save(context.Background()))
	assert.Equal(t, "i2", api.items[0].ID)
}

func TestCollectionEditor_SetConfig_MarqueSale(t *testing.T) {
	editor, api := seedEditor(t)

	cfg := editor.Config()
	cfg.Autoplay = false
	cfg.Interval = 8000
	editor.SetConfig(cfg)
	assert.True(t, editor.Dirty())

	require.NoError(t, editor.Save(context.Background()))
	assert.False(t, api.config.Autoplay)
	assert.Equal(t, 8000, api.config.Interval)
}
