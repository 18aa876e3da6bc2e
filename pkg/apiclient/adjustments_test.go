package apiclient_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/pkg/apiclient"
)

// fakeStockSetter échoue pour les produits listés dans failing.
type fakeStockSetter struct {
	mu      sync.Mutex
	calls   []dto.SetStockRequest
	failing map[string]error
}

func (f *fakeStockSetter) SetStock(ctx context.Context, in dto.SetStockRequest) (*dto.MovementResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	f.mu.Unlock()
	if err, ok := f.failing[in.ProductID]; ok {
		return nil, err
	}
	return &dto.MovementResponse{
		ProductID: in.ProductID,
		VariantID: in.VariantID,
		Type:      "ADJUSTMENT",
		NewStock:  in.NewStock,
	}, nil
}

func TestAdjustmentBatch_StockViseEgalAuCourant_RetireLeBrouillon(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()

	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 10, Desired: 7}))
	assert.Equal(t, 1, b.Len())

	// revenir à la valeur courante annule le brouillon
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 10, Desired: 10}))
	assert.Equal(t, 0, b.Len())
}

func TestAdjustmentBatch_StockViseNegatif_Rejete(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()

	err := b.Set(apiclient.Adjustment{ProductID: "p1", Current: 3, Desired: -1})
	require.Error(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestAdjustmentBatch_VariantesDistinctesDuProduit(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()

	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 5, Desired: 8}))
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", VariantID: "v1", Current: 2, Desired: 4}))
	assert.Equal(t, 2, b.Len())
}

func TestAdjustmentBatch_Submit_EchecPartielRapporteEtRafraichit(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 10, Desired: 12}))
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p2", Current: 5, Desired: 3}))
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p3", Current: 0, Desired: 9}))

	refreshed := false
	b.OnRefresh(func() { refreshed = true })

	api := &fakeStockSetter{failing: map[string]error{"p2": assert.AnError}}
	res, err := b.Submit(context.Background(), api)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "2 sur 3 ajustements appliqués", res.Summary())
	assert.True(t, refreshed)

	// résultats dans l'ordre de saisie
	require.Len(t, res.Results, 3)
	assert.Equal(t, "p1", res.Results[0].Adjustment.ProductID)
	assert.NoError(t, res.Results[0].Err)
	assert.Equal(t, "p2", res.Results[1].Adjustment.ProductID)
	assert.Error(t, res.Results[1].Err)
	assert.Equal(t, "p3", res.Results[2].Adjustment.ProductID)
	assert.NoError(t, res.Results[2].Err)

	// la ligne en échec reste pour un nouveau Submit
	assert.Equal(t, 1, b.Len())
	pending := b.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "p2", pending[0].ProductID)
}

func TestAdjustmentBatch_Resoumission_NeRejoueQueLesEchecs(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 1, Desired: 2}))
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p2", Current: 1, Desired: 5}))

	api := &fakeStockSetter{failing: map[string]error{"p2": assert.AnError}}
	_, err := b.Submit(context.Background(), api)
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())

	// le serveur se rétablit
	api.failing = nil
	res, err := b.Submit(context.Background(), api)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 0, b.Len())

	// p1 ne doit avoir été envoyé qu'une fois
	sent := 0
	for _, call := range api.calls {
		if call.ProductID == "p1" {
			sent++
		}
	}
	assert.Equal(t, 1, sent)
}

func TestAdjustmentBatch_SubmitVide_BilanVide(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()
	res, err := b.Submit(context.Background(), &fakeStockSetter{})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.Equal(t, "0 sur 0 ajustements appliqués", res.Summary())
}

func TestAdjustmentBatch_ContexteAnnule_LignesEnEchec(t *testing.T) {
	b := apiclient.NewAdjustmentBatch()
	require.NoError(t, b.Set(apiclient.Adjustment{ProductID: "p1", Current: 1, Desired: 2}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := b.Submit(ctx, &fakeStockSetter{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.ErrorIs(t, res.Results[0].Err, context.Canceled)
	assert.Equal(t, 1, b.Len())
}
