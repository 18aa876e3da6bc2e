package entity

import (
	"encoding/json"
	"time"
)

// Types de section de la page d'accueil.
const (
	SectionTypeHero       = "hero"
	SectionTypeCollection = "collection"
	SectionTypeCategories = "categories"
)

// HomeSection bloc configurable et ordonnable de la page d'accueil.
// Content est un blob JSON dont la forme dépend de Type (voir internal/domain/content).
// Order est dense et unique parmi les sections : renuméroté à chaque réordonnancement,
// jamais de trous.
type HomeSection struct {
	ID          string
	Title       string
	Description string
	Type        string // hero, collection, categories, ...
	Content     json.RawMessage
	IsVisible   bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
