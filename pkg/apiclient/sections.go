package apiclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/marchand/boutique-api/internal/application/dto"
)

// SectionAPI sous-ensemble du client utilisé par la liste de sections.
type SectionAPI interface {
	ListSections(ctx context.Context) (*dto.SectionListResponse, error)
	ReorderSections(ctx context.Context, in dto.ReorderSectionsRequest) (*dto.SectionListResponse, error)
	ToggleSectionVisibility(ctx context.Context, id string) (*dto.SectionResponse, error)
	DuplicateSection(ctx context.Context, id string) (*dto.SectionResponse, error)
	DeleteSection(ctx context.Context, id string) error
}

// SectionList état local de l'écran des sections d'accueil, mis à jour en
// optimiste : le déplacement et la bascule de visibilité s'appliquent
// localement d'abord, puis l'appel serveur confirme. En cas d'échec l'état
// local revient au cliché pris avant la modification.
type SectionList struct {
	mu    sync.Mutex
	api   SectionAPI
	items []dto.SectionResponse
}

// NewSectionList construit la liste, vide tant que Refresh n'a pas tourné.
func NewSectionList(api SectionAPI) *SectionList {
	return &SectionList{api: api}
}

// Refresh recharge la liste depuis le serveur.
func (l *SectionList) Refresh(ctx context.Context) error {
	resp, err := l.api.ListSections(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = resp.Items
	l.mu.Unlock()
	return nil
}

// Items renvoie une copie de l'état local courant.
func (l *SectionList) Items() []dto.SectionResponse {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]dto.SectionResponse, len(l.items))
	copy(out, l.items)
	return out
}

// Move déplace la section de delta positions (négatif = vers le haut) en
// optimiste, puis pousse l'ordre complet au serveur. Rollback sur échec.
func (l *SectionList) Move(ctx context.Context, id string, delta int) error {
	l.mu.Lock()
	snapshot := make([]dto.SectionResponse, len(l.items))
	copy(snapshot, l.items)

	from := l.indexOf(id)
	if from < 0 {
		l.mu.Unlock()
		return fmt.Errorf("section inconnue: %s", id)
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(l.items)-1 {
		to = len(l.items) - 1
	}
	if to == from {
		l.mu.Unlock()
		return nil
	}

	moved := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	rest := make([]dto.SectionResponse, 0, len(l.items)+1)
	rest = append(rest, l.items[:to]...)
	rest = append(rest, moved)
	rest = append(rest, l.items[to:]...)
	l.items = rest
	for i := range l.items {
		l.items[i].Order = i + 1
	}

	req := dto.ReorderSectionsRequest{Sections: make([]dto.SectionOrderRequest, len(l.items))}
	for i, s := range l.items {
		req.Sections[i] = dto.SectionOrderRequest{ID: s.ID, Order: i + 1}
	}
	l.mu.Unlock()

	resp, err := l.api.ReorderSections(ctx, req)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.items = snapshot
		return err
	}
	l.items = resp.Items
	return nil
}

// ToggleVisibility bascule la visibilité en optimiste, rollback sur échec.
func (l *SectionList) ToggleVisibility(ctx context.Context, id string) error {
	l.mu.Lock()
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return fmt.Errorf("section inconnue: %s", id)
	}
	previous := l.items[i].IsVisible
	l.items[i].IsVisible = !previous
	l.mu.Unlock()

	resp, err := l.api.ToggleSectionVisibility(ctx, id)
	l.mu.Lock()
	defer l.mu.Unlock()
	if j := l.indexOf(id); j >= 0 {
		if err != nil {
			l.items[j].IsVisible = previous
		} else {
			l.items[j] = *resp
		}
	}
	return err
}

// Duplicate duplique côté serveur puis ajoute la copie en fin de liste.
// Pas d'optimiste : l'identifiant et le titre de la copie viennent du serveur.
func (l *SectionList) Duplicate(ctx context.Context, id string) (*dto.SectionResponse, error) {
	resp, err := l.api.DuplicateSection(ctx, id)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.items = append(l.items, *resp)
	l.mu.Unlock()
	return resp, nil
}

// Delete supprime côté serveur puis retire la section et renumérote.
func (l *SectionList) Delete(ctx context.Context, id string) error {
	if err := l.api.DeleteSection(ctx, id); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexOf(id); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
		for j := range l.items {
			l.items[j].Order = j + 1
		}
	}
	return nil
}

// indexOf position d'une section dans l'état local, -1 si absente.
// Appelant détient le verrou.
func (l *SectionList) indexOf(id string) int {
	for i, s := range l.items {
		if s.ID == id {
			return i
		}
	}
	return -1
}
