package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/application/inventory"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
	variants map[string]*entity.ProductVariant
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]*entity.Product{},
		variants: map[string]*entity.ProductVariant{},
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	for i := range p.Variants {
		v := p.Variants[i]
		r.variants[v.ID] = &v
	}
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }
func (r *fakeProductRepo) GetVariant(id string) (*entity.ProductVariant, error) {
	return r.variants[id], nil
}
func (r *fakeProductRepo) UpdateVariantStock(id string, stock int) error {
	v, ok := r.variants[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Stock = stock
	return nil
}
func (r *fakeProductRepo) ReplaceVariants(productID string, variants []entity.ProductVariant) error {
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	failNext  bool
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.failNext {
		r.failNext = false
		return assert.AnError
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

// fakeTx exécute fn sans transaction réelle mais restaure les stocks en cas d'échec.
type fakeTx struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(r inventory.Repos) error) error {
	saved := map[string]int{}
	for id, p := range t.products.products {
		saved[id] = p.Stock
	}
	savedVariants := map[string]int{}
	for id, v := range t.products.variants {
		savedVariants[id] = v.Stock
	}
	err := fn(inventory.Repos{Products: t.products, Movements: t.movements})
	if err != nil {
		for id, s := range saved {
			t.products.products[id].Stock = s
		}
		for id, s := range savedVariants {
			t.products.variants[id].Stock = s
		}
	}
	return err
}

func buildInventory(t *testing.T) (*inventory.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	t.Helper()
	products := newFakeProductRepo()
	movements := &fakeMovementRepo{}
	uc := inventory.NewUseCase(products, movements, &fakeTx{products: products, movements: movements})
	return uc, products, movements
}

func seedProduct(r *fakeProductRepo, id string, stock, lowStock int, variants ...entity.ProductVariant) {
	r.Create(&entity.Product{
		ID:         id,
		SKU:        "SKU-" + id,
		Name:       "Produit " + id,
		Price:      decimal.NewFromFloat(10),
		Stock:      stock,
		LowStock:   lowStock,
		TrackStock: true,
		Variants:   variants,
	})
}

func TestRegisterMovement_Entree(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	m, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, Reason: "Réception fournisseur",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, m.PreviousStock)
	assert.Equal(t, 15, m.NewStock)
	assert.Equal(t, 15, products.products["p1"].Stock)
	assert.Equal(t, "u1", m.CreatedBy)
}

func TestRegisterMovement_SortieSousZeroRejetee(t *testing.T) {
	uc, products, movements := buildInventory(t)
	seedProduct(products, "p1", 3, 5)

	_, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 4,
	})

	assert.ErrorIs(t, err, domain.ErrStockNegative)
	assert.Equal(t, 3, products.products["p1"].Stock)
	assert.Empty(t, movements.movements)
}

func TestRegisterMovement_AjustementRaisonParDefaut(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	m, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeADJUSTMENT, Quantity: -3,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, m.NewStock)
	assert.Equal(t, "Ajustement: 10 → 7", m.Reason)
}

func TestRegisterMovement_QuantiteNegativePourEntreeRejetee(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	_, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_SurVariante(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 0, 5,
		entity.ProductVariant{ID: "v1", ProductID: "p1", Name: "Rouge", Stock: 4},
	)

	m, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", VariantID: "v1", Type: entity.MovementTypeOUT, Quantity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.NewStock)
	assert.Equal(t, 2, products.variants["v1"].Stock)
	assert.Equal(t, 0, products.products["p1"].Stock)
}

func TestRegisterMovement_EchecPersistanceAnnuleLeStock(t *testing.T) {
	uc, products, movements := buildInventory(t)
	seedProduct(products, "p1", 10, 5)
	movements.failNext = true

	_, err := uc.RegisterMovement(context.Background(), "u1", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5,
	})

	require.Error(t, err)
	assert.Equal(t, 10, products.products["p1"].Stock)
}

func TestSetStock_PoseDirecte(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	m, err := uc.SetStock(context.Background(), "u1", dto.SetStockRequest{
		ProductID: "p1", NewStock: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeADJUSTMENT, m.Type)
	assert.Equal(t, 15, m.Quantity)
	assert.Equal(t, "Ajustement: 10 → 25", m.Reason)
	assert.Equal(t, 25, products.products["p1"].Stock)
}

func TestSetStock_NegatifRejete(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	_, err := uc.SetStock(context.Background(), "u1", dto.SetStockRequest{
		ProductID: "p1", NewStock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrStockNegative)
}

func TestSetStock_SansDifferenceRejete(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "p1", 10, 5)

	_, err := uc.SetStock(context.Background(), "u1", dto.SetStockRequest{
		ProductID: "p1", NewStock: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAlerts_StockEffectifEtNiveaux(t *testing.T) {
	uc, products, _ := buildInventory(t)
	seedProduct(products, "ok", 20, 5)
	seedProduct(products, "bas", 3, 5)
	seedProduct(products, "vide", 0, 5)
	seedProduct(products, "ignore", 0, 5)
	products.products["ignore"].TrackStock = false
	// le stock de base est ignoré dès qu'il y a des variantes
	seedProduct(products, "variantes", 50, 5,
		entity.ProductVariant{ID: "va", ProductID: "variantes", Stock: 1},
		entity.ProductVariant{ID: "vb", ProductID: "variantes", Stock: 1},
	)

	alerts, err := uc.Alerts()
	require.NoError(t, err)

	require.Len(t, alerts, 3)
	assert.Equal(t, "vide", alerts[0].ProductID)
	assert.Equal(t, "critical", alerts[0].AlertLevel)
	assert.Equal(t, "out_of_stock", alerts[0].Status)
	assert.Equal(t, "variantes", alerts[1].ProductID)
	assert.Equal(t, 2, alerts[1].EffectiveStock)
	assert.Equal(t, "critical", alerts[1].AlertLevel)
	assert.Equal(t, "bas", alerts[2].ProductID)
	assert.Equal(t, "warning", alerts[2].AlertLevel)
}
