package apiclient

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain/content"
)

// CollectionAPI sous-ensemble du client utilisé par l'éditeur de collection.
type CollectionAPI interface {
	GetCollectionItems(ctx context.Context, sectionID string) (*dto.CollectionItemsResponse, error)
	PutCollectionItems(ctx context.Context, sectionID string, in dto.CollectionItemsRequest) (*dto.CollectionItemsResponse, error)
}

// CollectionEditor état local de l'éditeur d'une section collection. Chaque
// modification marque l'état sale, Save pousse la liste complète au serveur.
// Un échec de sauvegarde ne perd jamais l'état local : il reste sale et la
// prochaine sauvegarde le reprend tel quel.
type CollectionEditor struct {
	mu        sync.Mutex
	api       CollectionAPI
	sectionID string
	items     []content.CollectionItem
	config    content.CarouselConfig
	dirty     bool
	onError   func(error)
}

// NewCollectionEditor construit l'éditeur, vide tant que Load n'a pas tourné.
func NewCollectionEditor(api CollectionAPI, sectionID string) *CollectionEditor {
	return &CollectionEditor{api: api, sectionID: sectionID}
}

// OnSaveError pose le callback appelé quand une sauvegarde automatique échoue.
func (e *CollectionEditor) OnSaveError(fn func(error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onError = fn
}

// Load charge items et config depuis le serveur et remet l'état propre.
func (e *CollectionEditor) Load(ctx context.Context) error {
	resp, err := e.api.GetCollectionItems(ctx, e.sectionID)
	if err != nil {
		return err
	}
	var items []content.CollectionItem
	if err := json.Unmarshal(resp.Items, &items); err != nil {
		return err
	}
	config := content.DefaultCarouselConfig()
	if len(resp.CarouselConfig) > 0 {
		if err := json.Unmarshal(resp.CarouselConfig, &config); err != nil {
			return err
		}
	}
	e.mu.Lock()
	e.items = items
	e.config = config
	e.dirty = false
	e.mu.Unlock()
	return nil
}

// Items renvoie une copie de l'état local.
func (e *CollectionEditor) Items() []content.CollectionItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]content.CollectionItem, len(e.items))
	copy(out, e.items)
	return out
}

// Config renvoie la config carrousel locale.
func (e *CollectionEditor) Config() content.CarouselConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config
}

// Dirty indique des modifications locales non sauvegardées.
func (e *CollectionEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// SetItems remplace la liste entière (drag and drop) et renumérote.
func (e *CollectionEditor) SetItems(items []content.CollectionItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range items {
		items[i].Order = i
	}
	e.items = items
	e.dirty = true
}

// UpdateItem applique fn sur l'item visé.
func (e *CollectionEditor) UpdateItem(id string, fn func(*content.CollectionItem)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].ID == id {
			fn(&e.items[i])
			e.items[i].Order = i
			e.dirty = true
			return true
		}
	}
	return false
}

// SetConfig remplace la config carrousel locale.
func (e *CollectionEditor) SetConfig(cfg content.CarouselConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config = cfg
	e.dirty = true
}

// Save pousse l'état local au serveur puis adopte l'écho serveur. Sur échec
// l'état local est conservé et reste sale.
func (e *CollectionEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	items := make([]content.CollectionItem, len(e.items))
	copy(items, e.items)
	config := e.config
	e.mu.Unlock()

	rawItems, err := json.Marshal(items)
	if err != nil {
		return err
	}
	rawConfig, err := json.Marshal(config)
	if err != nil {
		return err
	}

	resp, err := e.api.PutCollectionItems(ctx, e.sectionID, dto.CollectionItemsRequest{
		Items:          rawItems,
		CarouselConfig: rawConfig,
	})
	if err != nil {
		return err
	}

	var saved []content.CollectionItem
	if err := json.Unmarshal(resp.Items, &saved); err != nil {
		return err
	}
	e.mu.Lock()
	e.items = saved
	e.dirty = false
	e.mu.Unlock()
	return nil
}

// AutoSave sauvegarde l'état dès qu'il est sale, à chaque tick, jusqu'à
// l'annulation du contexte. Les échecs sont signalés via OnSaveError et
// retentés au tick suivant tant que l'état reste sale.
func (e *CollectionEditor) AutoSave(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.Dirty() {
				continue
			}
			if err := e.Save(ctx); err != nil {
				e.mu.Lock()
				fn := e.onError
				e.mu.Unlock()
				if fn != nil {
					fn(err)
				}
			}
		}
	}
}
