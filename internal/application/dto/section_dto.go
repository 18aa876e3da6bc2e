package dto

import (
	"encoding/json"
	"time"
)

// CreateSectionRequest entrée de création d'une section d'accueil.
type CreateSectionRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" validate:"required"`
	Content     json.RawMessage `json:"content"`
	IsVisible   *bool           `json:"isVisible"`
}

// UpdateSectionRequest entrée de PATCH /content/home-sections/:id.
type UpdateSectionRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Content     json.RawMessage `json:"content"`
	IsVisible   *bool           `json:"isVisible"`
}

// SectionOrderRequest paire id/ordre du réordonnancement en bloc.
type SectionOrderRequest struct {
	ID    string `json:"id" validate:"required"`
	Order int    `json:"order"`
}

// ReorderSectionsRequest entrée de PUT /content/home-sections.
type ReorderSectionsRequest struct {
	Sections []SectionOrderRequest `json:"sections" validate:"required,min=1"`
}

// SectionResponse sortie d'une section.
type SectionResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Content     json.RawMessage `json:"content"`
	IsVisible   bool            `json:"isVisible"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SectionListResponse liste ordonnée de sections.
type SectionListResponse struct {
	Items []SectionResponse `json:"items"`
}

// CollectionItemsRequest entrée de PUT /content/home-section/:id/collections :
// la liste complète des items et la config du carrousel, persistées ensemble.
type CollectionItemsRequest struct {
	Items          json.RawMessage `json:"items" validate:"required"`
	CarouselConfig json.RawMessage `json:"carouselConfig"`
}

// CollectionItemsResponse sortie de GET /content/home-section/:id/collections.
type CollectionItemsResponse struct {
	SectionID      string          `json:"sectionId"`
	Items          json.RawMessage `json:"items"`
	CarouselConfig json.RawMessage `json:"carouselConfig"`
}
