package apiclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/marchand/boutique-api/internal/application/dto"
)

// defaultConcurrency nombre d'envois simultanés lors d'un Submit.
const defaultConcurrency = 4

// StockSetter sous-ensemble du client utilisé par le batch (mockable en test).
type StockSetter interface {
	SetStock(ctx context.Context, in dto.SetStockRequest) (*dto.MovementResponse, error)
}

// Adjustment un brouillon d'ajustement : stock courant affiché et stock visé.
type Adjustment struct {
	ProductID string
	VariantID string
	Current   int
	Desired   int
	Reason    string
}

// key identifie la ligne ajustée, variante comprise.
func (a Adjustment) key() string {
	return a.ProductID + "/" + a.VariantID
}

// AdjustmentResult issue d'un ajustement après Submit.
type AdjustmentResult struct {
	Adjustment Adjustment
	Movement   *dto.MovementResponse
	Err        error
}

// BatchResult bilan d'un Submit : résultats dans l'ordre de saisie.
type BatchResult struct {
	Results   []AdjustmentResult
	Succeeded int
	Failed    int
}

// Summary bilan lisible, affiché tel quel à l'opérateur.
func (r *BatchResult) Summary() string {
	total := len(r.Results)
	return fmt.Sprintf("%d sur %d ajustements appliqués", r.Succeeded, total)
}

// AdjustmentBatch accumule des brouillons d'ajustement de stock et les soumet
// en parallèle borné. Chaque ligne est indépendante : un échec n'arrête pas
// les autres, les lignes en échec restent dans le batch pour re-soumission.
type AdjustmentBatch struct {
	mu          sync.Mutex
	order       []string
	pending     map[string]Adjustment
	concurrency int
	refresh     []func()
}

// NewAdjustmentBatch construit un batch vide.
func NewAdjustmentBatch() *AdjustmentBatch {
	return &AdjustmentBatch{
		pending:     make(map[string]Adjustment),
		concurrency: defaultConcurrency,
	}
}

// SetConcurrency borne le nombre d'envois simultanés (minimum 1).
func (b *AdjustmentBatch) SetConcurrency(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 1 {
		n = 1
	}
	b.concurrency = n
}

// OnRefresh abonne un callback appelé après chaque Submit, succès partiel
// compris : l'écran doit recharger les stocks quoi qu'il arrive.
func (b *AdjustmentBatch) OnRefresh(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh = append(b.refresh, fn)
}

// Set pose ou met à jour un brouillon. Un stock visé négatif est rejeté, un
// stock visé égal au courant retire le brouillon (rien à soumettre).
func (b *AdjustmentBatch) Set(a Adjustment) error {
	if a.ProductID == "" {
		return fmt.Errorf("ajustement sans produit")
	}
	if a.Desired < 0 {
		return fmt.Errorf("stock visé négatif: %d", a.Desired)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	k := a.key()
	if a.Desired == a.Current {
		if _, ok := b.pending[k]; ok {
			delete(b.pending, k)
			for i, existing := range b.order {
				if existing == k {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		}
		return nil
	}
	if _, ok := b.pending[k]; !ok {
		b.order = append(b.order, k)
	}
	b.pending[k] = a
	return nil
}

// Remove retire un brouillon du batch.
func (b *AdjustmentBatch) Remove(productID, variantID string) {
	b.Set(Adjustment{ProductID: productID, VariantID: variantID, Current: 0, Desired: 0})
}

// Len nombre de brouillons en attente.
func (b *AdjustmentBatch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Pending renvoie les brouillons dans l'ordre de saisie.
func (b *AdjustmentBatch) Pending() []Adjustment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Adjustment, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.pending[k])
	}
	return out
}

// Submit soumet tous les brouillons en parallèle borné. Les résultats sont
// rendus dans l'ordre de saisie. Les lignes appliquées sont retirées du
// batch, celles en échec restent pour un nouveau Submit. Les callbacks
// OnRefresh sont appelés dans tous les cas.
func (b *AdjustmentBatch) Submit(ctx context.Context, api StockSetter) (*BatchResult, error) {
	b.mu.Lock()
	drafts := make([]Adjustment, 0, len(b.order))
	for _, k := range b.order {
		drafts = append(drafts, b.pending[k])
	}
	concurrency := b.concurrency
	refresh := make([]func(), len(b.refresh))
	copy(refresh, b.refresh)
	b.mu.Unlock()

	if len(drafts) == 0 {
		return &BatchResult{}, nil
	}

	results := make([]AdjustmentResult, len(drafts))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, draft := range drafts {
		wg.Add(1)
		go func(i int, draft Adjustment) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := AdjustmentResult{Adjustment: draft}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Movement, res.Err = api.SetStock(ctx, dto.SetStockRequest{
					ProductID: draft.ProductID,
					VariantID: draft.VariantID,
					NewStock:  draft.Desired,
					Reason:    draft.Reason,
				})
			}
			results[i] = res
		}(i, draft)
	}
	wg.Wait()

	out := &BatchResult{Results: results}
	b.mu.Lock()
	for _, res := range results {
		if res.Err == nil {
			out.Succeeded++
			k := res.Adjustment.key()
			delete(b.pending, k)
			for i, existing := range b.order {
				if existing == k {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		} else {
			out.Failed++
		}
	}
	b.mu.Unlock()

	for _, fn := range refresh {
		fn()
	}
	return out, nil
}
