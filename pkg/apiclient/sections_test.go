package apiclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/pkg/apiclient"
)

// fakeSectionAPI rejoue la renumérotation du serveur, ou échoue si failAll.
type fakeSectionAPI struct {
	sections []dto.SectionResponse
	failAll  bool
	reorders []dto.ReorderSectionsRequest
}

func (f *fakeSectionAPI) ListSections(ctx context.Context) (*dto.SectionListResponse, error) {
	if f.failAll {
		return nil, assert.AnError
	}
	items := make([]dto.SectionResponse, len(f.sections))
	copy(items, f.sections)
	return &dto.SectionListResponse{Items: items}, nil
}

func (f *fakeSectionAPI) ReorderSections(ctx context.Context, in dto.ReorderSectionsRequest) (*dto.SectionListResponse, error) {
	f.reorders = append(f.reorders, in)
	if f.failAll {
		return nil, assert.AnError
	}
	byID := make(map[string]dto.SectionResponse, len(f.sections))
	for _, s := range f.sections {
		byID[s.ID] = s
	}
	out := make([]dto.SectionResponse, 0, len(in.Sections))
	for i, req := range in.Sections {
		s := byID[req.ID]
		s.Order = i + 1
		out = append(out, s)
	}
	f.sections = out
	return &dto.SectionListResponse{Items: out}, nil
}

func (f *fakeSectionAPI) ToggleSectionVisibility(ctx context.Context, id string) (*dto.SectionResponse, error) {
	if f.failAll {
		return nil, assert.AnError
	}
	for i := range f.sections {
		if f.sections[i].ID == id {
			f.sections[i].IsVisible = !f.sections[i].IsVisible
			s := f.sections[i]
			return &s, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeSectionAPI) DuplicateSection(ctx context.Context, id string) (*dto.SectionResponse, error) {
	if f.failAll {
		return nil, assert.AnError
	}
	for _, s := range f.sections {
		if s.ID == id {
			dup := s
			dup.ID = s.ID + "-copie"
			dup.Title = s.Title + " (Copie)"
			dup.IsVisible = false
			dup.Order = len(f.sections) + 1
			f.sections = append(f.sections, dup)
			return &dup, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeSectionAPI) DeleteSection(ctx context.Context, id string) error {
	if f.failAll {
		return assert.AnError
	}
	for i := range f.sections {
		if f.sections[i].ID == id {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			return nil
		}
	}
	return assert.AnError
}

func seedSectionAPI() *fakeSectionAPI {
	return &fakeSectionAPI{sections: []dto.SectionResponse{
		{ID: "a", Title: "Héros", Type: "hero", Order: 1, IsVisible: true},
		{ID: "b", Title: "Nouveautés", Type: "collection", Order: 2, IsVisible: true},
		{ID: "c", Title: "Promotions", Type: "collection", Order: 3, IsVisible: false},
	}}
}

func ids(items []dto.SectionResponse) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.ID
	}
	return out
}

func TestSectionList_Move_ReordonneEtRenumerote(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Move(context.Background(), "c", -2))

	items := list.Items()
	assert.Equal(t, []string{"c", "a", "b"}, ids(items))
	for i, s := range items {
		assert.Equal(t, i+1, s.Order)
	}

	// l'ordre poussé au serveur est complet et base 1
	require.Len(t, api.reorders, 1)
	req := api.reorders[0]
	require.Len(t, req.Sections, 3)
	assert.Equal(t, "c", req.Sections[0].ID)
	assert.Equal(t, 1, req.Sections[0].Order)
}

func TestSectionList_Move_EchecServeur_RetourneALEtatPrecedent(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	api.failAll = true
	err := list.Move(context.Background(), "c", -2)
	require.Error(t, err)

	// rollback : rien n'a bougé localement
	assert.Equal(t, []string{"a", "b", "c"}, ids(list.Items()))
}

func TestSectionList_Move_HorsBornes_Tronque(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Move(context.Background(), "a", 10))
	assert.Equal(t, []string{"b", "c", "a"}, ids(list.Items()))
}

func TestSectionList_ToggleVisibility_EchecServeur_Rollback(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	api.failAll = true
	err := list.ToggleVisibility(context.Background(), "a")
	require.Error(t, err)

	items := list.Items()
	assert.True(t, items[0].IsVisible)
}

func TestSectionList_Duplicate_AjouteLaCopieEnFin(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	dup, err := list.Duplicate(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "Nouveautés (Copie)", dup.Title)
	assert.False(t, dup.IsVisible)

	items := list.Items()
	require.Len(t, items, 4)
	assert.Equal(t, dup.ID, items[3].ID)
}

func TestSectionList_Delete_RenumeroteLesSurvivantes(t *testing.T) {
	api := seedSectionAPI()
	list := apiclient.NewSectionList(api)
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Delete(context.Background(), "b"))

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []string{"a", "c"}, ids(items))
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, 2, items[1].Order)
}
