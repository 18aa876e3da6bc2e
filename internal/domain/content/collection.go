package content

import (
	"encoding/json"

	"github.com/marchand/boutique-api/internal/domain"
)

// ItemsVisible nombre d'items visibles par taille d'écran.
type ItemsVisible struct {
	Desktop int `json:"desktop"`
	Tablet  int `json:"tablet"`
	Mobile  int `json:"mobile"`
}

// CarouselConfig réglages du carrousel de collection.
type CarouselConfig struct {
	Autoplay          bool         `json:"autoplay"`
	Interval          int          `json:"interval"` // ms
	PauseOnHover      bool         `json:"pauseOnHover"`
	ShowArrows        bool         `json:"showArrows"`
	ShowDots          bool         `json:"showDots"`
	ItemsVisible      ItemsVisible `json:"itemsVisible"`
	AnimationDuration int          `json:"animationDuration"` // ms
	Scale             float64      `json:"scale"`
	Gap               int          `json:"gap"` // px
}

// CollectionItem un élément du carrousel de collection.
// Order doit toujours valoir l'index dans le tableau : il est renuméroté à
// chaque écriture de la liste.
type CollectionItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Link         string   `json:"link"`
	Accent       string   `json:"accent"`
	TextColor    string   `json:"textColor"`
	ButtonColor  string   `json:"buttonColor"`
	CtaText      string   `json:"ctaText"`
	Order        int      `json:"order"`
	ImageOpacity *float64 `json:"imageOpacity,omitempty"`
}

// CollectionContent forme du blob content quand type == "collection".
type CollectionContent struct {
	CarouselConfig CarouselConfig
	Items          []CollectionItem

	extra map[string]json.RawMessage
}

// DefaultCarouselConfig valeurs par défaut du carrousel.
func DefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		Autoplay:          true,
		Interval:          4000,
		PauseOnHover:      true,
		ShowArrows:        true,
		ShowDots:          false,
		ItemsVisible:      ItemsVisible{Desktop: 4, Tablet: 2, Mobile: 1},
		AnimationDuration: 600,
		Scale:             1.0,
		Gap:               16,
	}
}

func defaultCollectionItem(order int) CollectionItem {
	return CollectionItem{
		ID:          newID("item"),
		Title:       "Nouvel élément",
		Description: "",
		Link:        "",
		Accent:      "#c59d5f",
		TextColor:   "#ffffff",
		ButtonColor: "#1f2937",
		CtaText:     "Découvrir",
		Order:       order,
	}
}

// HydrateCollection décode un blob content de section collection en
// complétant les clés manquantes avec les défauts, sans perdre les clés
// inconnues. Les items sont renumérotés pour que order == index.
func HydrateCollection(raw json.RawMessage) (*CollectionContent, error) {
	fields, extra, err := splitKnown(raw, "carouselConfig", "items")
	if err != nil {
		return nil, err
	}

	c := &CollectionContent{
		CarouselConfig: DefaultCarouselConfig(),
		extra:          extra,
	}
	if v, ok := fields["carouselConfig"]; ok {
		if err := json.Unmarshal(v, &c.CarouselConfig); err != nil {
			return nil, err
		}
	}
	if v, ok := fields["items"]; ok {
		if err := json.Unmarshal(v, &c.Items); err != nil {
			return nil, err
		}
	}
	if len(c.Items) == 0 {
		c.Items = []CollectionItem{defaultCollectionItem(0)}
	}
	c.renumber()
	return c, nil
}

// MarshalJSON restitue le blob avec les clés inconnues d'origine.
func (c *CollectionContent) MarshalJSON() ([]byte, error) {
	return mergeMarshal(c.extra, map[string]any{
		"carouselConfig": c.CarouselConfig,
		"items":          c.Items,
	})
}

// UnmarshalJSON ré-hydrate (mêmes règles que HydrateCollection).
func (c *CollectionContent) UnmarshalJSON(data []byte) error {
	h, err := HydrateCollection(data)
	if err != nil {
		return err
	}
	*c = *h
	return nil
}

// Extra renvoie la valeur brute d'une clé hors schéma conservée.
func (c *CollectionContent) Extra(key string) (json.RawMessage, bool) {
	v, ok := c.extra[key]
	return v, ok
}

func (c *CollectionContent) renumber() {
	for i := range c.Items {
		c.Items[i].Order = i
	}
}

// ItemIndex renvoie la position d'un item, -1 si absent.
func (c *CollectionContent) ItemIndex(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem ajoute en fin de liste un item par défaut avec order = longueur
// courante, et le renvoie.
func (c *CollectionContent) AddItem() *CollectionItem {
	c.Items = append(c.Items, defaultCollectionItem(len(c.Items)))
	return &c.Items[len(c.Items)-1]
}

// DuplicateItem clone l'item, lui donne un nouvel id et l'ajoute en fin de
// liste avec order = longueur courante.
func (c *CollectionContent) DuplicateItem(id string) (*CollectionItem, error) {
	i := c.ItemIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	dup := c.Items[i]
	dup.ID = newID("item")
	dup.Order = len(c.Items)
	c.Items = append(c.Items, dup)
	return &c.Items[len(c.Items)-1], nil
}

// RemoveItem supprime un item puis renumérote. Refusé s'il est le dernier.
func (c *CollectionContent) RemoveItem(id string) error {
	i := c.ItemIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if len(c.Items) <= 1 {
		return domain.ErrLastItem
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.renumber()
	return nil
}

// SetItems remplace la liste entière (réordonnancement soumis en bloc) et
// recalcule immédiatement order == index pour chaque item.
func (c *CollectionContent) SetItems(items []CollectionItem) {
	c.Items = items
	c.renumber()
}
