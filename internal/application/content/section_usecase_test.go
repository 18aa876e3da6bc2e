package content_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcontent "github.com/marchand/boutique-api/internal/application/content"
	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

type fakeSectionRepo struct {
	sections map[string]*entity.HomeSection
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: map[string]*entity.HomeSection{}}
}

func (r *fakeSectionRepo) Create(s *entity.HomeSection) error {
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *fakeSectionRepo) GetByID(id string) (*entity.HomeSection, error) {
	s, ok := r.sections[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSectionRepo) Update(s *entity.HomeSection) error {
	if _, ok := r.sections[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.sections[s.ID] = &cp
	return nil
}

func (r *fakeSectionRepo) List() ([]*entity.HomeSection, error) {
	out := make([]*entity.HomeSection, 0, len(r.sections))
	for _, s := range r.sections {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeSectionRepo) Reorder(orders []repository.SectionOrder) error {
	for _, o := range orders {
		if s, ok := r.sections[o.ID]; ok {
			s.Order = o.Order
		}
	}
	return nil
}

func (r *fakeSectionRepo) Delete(id string) error {
	delete(r.sections, id)
	return nil
}

func (r *fakeSectionRepo) MaxOrder() (int, error) {
	max := 0
	for _, s := range r.sections {
		if s.Order > max {
			max = s.Order
		}
	}
	return max, nil
}

func seedSections(t *testing.T, uc *appcontent.SectionUseCase, titles ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		s, err := uc.Create(dto.CreateSectionRequest{Title: title, Type: entity.SectionTypeHero})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCreate_OrdreEnFinDeListe(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())

	first, err := uc.Create(dto.CreateSectionRequest{Title: "Hero", Type: entity.SectionTypeHero})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateSectionRequest{Title: "Nouveautés", Type: entity.SectionTypeCollection})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
	assert.True(t, first.IsVisible)
}

func TestCreate_NormaliseLeContenuHero(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())

	s, err := uc.Create(dto.CreateSectionRequest{Title: "Hero", Type: entity.SectionTypeHero})
	require.NoError(t, err)

	var blob map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(s.Content, &blob))
	assert.Contains(t, blob, "sliderConfig")
	assert.Contains(t, blob, "slides")
	assert.Contains(t, blob, "loyaltyCard")
}

func TestDuplicate_SuffixeEtMasquee(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	ids := seedSections(t, uc, "Hero")

	dup, err := uc.Duplicate(ids[0])
	require.NoError(t, err)

	assert.Equal(t, "Hero (Copie)", dup.Title)
	assert.False(t, dup.IsVisible)
	assert.Equal(t, 2, dup.Order)
	assert.NotEqual(t, ids[0], dup.ID)
}

func TestToggleVisibility(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	ids := seedSections(t, uc, "Hero")

	s, err := uc.ToggleVisibility(ids[0])
	require.NoError(t, err)
	assert.False(t, s.IsVisible)

	s, err = uc.ToggleVisibility(ids[0])
	require.NoError(t, err)
	assert.True(t, s.IsVisible)
}

func TestReorder_RenumeroteDense(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	ids := seedSections(t, uc, "A", "B", "C")

	// C passe en tête
	out, err := uc.Reorder(dto.ReorderSectionsRequest{Sections: []dto.SectionOrderRequest{
		{ID: ids[2], Order: 0},
	}})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, ids[2], out.Items[0].ID)
	assert.Equal(t, ids[0], out.Items[1].ID)
	assert.Equal(t, ids[1], out.Items[2].ID)
	for i, item := range out.Items {
		assert.Equal(t, i+1, item.Order)
	}
}

func TestReorder_SectionInconnueRejetee(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	seedSections(t, uc, "A")

	_, err := uc.Reorder(dto.ReorderSectionsRequest{Sections: []dto.SectionOrderRequest{
		{ID: "inexistante", Order: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_RenumeroteLesSurvivantes(t *testing.T) {
	repo := newFakeSectionRepo()
	uc := appcontent.NewSectionUseCase(repo)
	ids := seedSections(t, uc, "A", "B", "C")

	require.NoError(t, uc.Delete(ids[1]))

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 1, out.Items[0].Order)
	assert.Equal(t, 2, out.Items[1].Order)
}

func TestPutCollectionItems_RenumeroteEtConserveLesClesInconnues(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())

	s, err := uc.Create(dto.CreateSectionRequest{
		Title:   "Carrousel",
		Type:    entity.SectionTypeCollection,
		Content: json.RawMessage(`{"themeOverride":{"accent":"#c09"},"items":[{"id":"i-1","title":"Un","order":7}]}`),
	})
	require.NoError(t, err)

	out, err := uc.PutCollectionItems(s.ID, dto.CollectionItemsRequest{
		Items: json.RawMessage(`[{"id":"i-2","title":"Deux","order":9},{"id":"i-1","title":"Un","order":3}]`),
	})
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(out.Items, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "i-2", items[0]["id"])
	assert.Equal(t, float64(0), items[0]["order"])
	assert.Equal(t, float64(1), items[1]["order"])

	// la clé inconnue du blob d'origine survit à l'écriture
	stored, err := uc.GetByID(s.ID)
	require.NoError(t, err)
	var blob map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stored.Content, &blob))
	assert.Contains(t, blob, "themeOverride")
}

func TestPutCollectionItems_ListeVideRejetee(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	s, err := uc.Create(dto.CreateSectionRequest{Title: "Carrousel", Type: entity.SectionTypeCollection})
	require.NoError(t, err)

	_, err = uc.PutCollectionItems(s.ID, dto.CollectionItemsRequest{Items: json.RawMessage(`[]`)})
	assert.ErrorIs(t, err, domain.ErrLastItem)
}

func TestPutCollectionItems_MauvaisTypeDeSection(t *testing.T) {
	uc := appcontent.NewSectionUseCase(newFakeSectionRepo())
	ids := seedSections(t, uc, "Hero")

	_, err := uc.PutCollectionItems(ids[0], dto.CollectionItemsRequest{
		Items: json.RawMessage(`[{"id":"i-1"}]`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
