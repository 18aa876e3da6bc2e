package content

import (
	"encoding/json"

	"github.com/marchand/boutique-api/internal/domain"
)

// SliderConfig réglages du slider hero.
type SliderConfig struct {
	Autoplay            bool `json:"autoplay"`
	Interval            int  `json:"interval"`            // ms
	LoyaltyCardInterval int  `json:"loyaltyCardInterval"` // ms, quand la slide active est la carte fidélité
	ShowArrows          bool `json:"showArrows"`
	ShowDots            bool `json:"showDots"`
	PauseOnHover        bool `json:"pauseOnHover"`
}

// HeroSlide une slide du slider hero.
type HeroSlide struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	Price         string `json:"price,omitempty"`
	Image         string `json:"image,omitempty"`
	Accent        string `json:"accent"`
	TextColor     string `json:"textColor"`
	ButtonColor   string `json:"buttonColor"`
	IsLoyaltyCard bool   `json:"isLoyaltyCard"`
	StampCount    int    `json:"stampCount,omitempty"`
}

// LoyaltyCard charge utile singleton de la carte fidélité, fusionnée dans
// toute slide marquée isLoyaltyCard au moment du rendu.
type LoyaltyCard struct {
	Enabled     bool   `json:"enabled"`
	StampCount  int    `json:"stampCount"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Position    string `json:"position"`
	Reward      string `json:"reward"`
	AccentColor string `json:"accentColor"`
	TextColor   string `json:"textColor"`
}

// HeroContent forme du blob content quand type == "hero".
// Les clés hors schéma du blob d'origine sont conservées à l'identique.
type HeroContent struct {
	SliderConfig SliderConfig
	Slides       []HeroSlide
	LoyaltyCard  LoyaltyCard

	extra map[string]json.RawMessage
}

// DefaultSliderConfig valeurs par défaut du slider.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{
		Autoplay:            true,
		Interval:            5000,
		LoyaltyCardInterval: 8000,
		ShowArrows:          true,
		ShowDots:            true,
		PauseOnHover:        true,
	}
}

// DefaultLoyaltyCard valeurs par défaut de la carte fidélité (désactivée).
func DefaultLoyaltyCard() LoyaltyCard {
	return LoyaltyCard{
		Enabled:     false,
		StampCount:  10,
		Title:       "Carte fidélité",
		Subtitle:    "10 achetés, 1 offert",
		Description: "Cumulez des tampons à chaque commande.",
		Position:    "last",
		Reward:      "1 produit offert",
		AccentColor: "#c59d5f",
		TextColor:   "#ffffff",
	}
}

func defaultHeroSlide() HeroSlide {
	return HeroSlide{
		ID:          newID("slide"),
		Title:       "Nouvelle slide",
		Subtitle:    "",
		Description: "",
		Accent:      "#c59d5f",
		TextColor:   "#ffffff",
		ButtonColor: "#1f2937",
	}
}

// HydrateHero décode un blob content de section hero en complétant les clés
// manquantes avec les valeurs par défaut, sans écraser celles déjà présentes
// ni perdre les clés inconnues. Un blob vide produit un contenu complet avec
// une slide par défaut (la cardinalité minimale est de 1).
func HydrateHero(raw json.RawMessage) (*HeroContent, error) {
	fields, extra, err := splitKnown(raw, "sliderConfig", "slides", "loyaltyCard")
	if err != nil {
		return nil, err
	}

	c := &HeroContent{
		SliderConfig: DefaultSliderConfig(),
		LoyaltyCard:  DefaultLoyaltyCard(),
		extra:        extra,
	}
	// Décoder par-dessus les défauts : les clés fournies gagnent, les absentes
	// gardent leur valeur par défaut.
	if v, ok := fields["sliderConfig"]; ok {
		if err := json.Unmarshal(v, &c.SliderConfig); err != nil {
			return nil, err
		}
	}
	if v, ok := fields["loyaltyCard"]; ok {
		if err := json.Unmarshal(v, &c.LoyaltyCard); err != nil {
			return nil, err
		}
	}
	if v, ok := fields["slides"]; ok {
		if err := json.Unmarshal(v, &c.Slides); err != nil {
			return nil, err
		}
	}
	if len(c.Slides) == 0 {
		c.Slides = []HeroSlide{defaultHeroSlide()}
	}
	return c, nil
}

// MarshalJSON restitue le blob avec les clés inconnues d'origine.
func (c *HeroContent) MarshalJSON() ([]byte, error) {
	return mergeMarshal(c.extra, map[string]any{
		"sliderConfig": c.SliderConfig,
		"slides":       c.Slides,
		"loyaltyCard":  c.LoyaltyCard,
	})
}

// UnmarshalJSON ré-hydrate (mêmes règles que HydrateHero).
func (c *HeroContent) UnmarshalJSON(data []byte) error {
	h, err := HydrateHero(data)
	if err != nil {
		return err
	}
	*c = *h
	return nil
}

// Extra renvoie la valeur brute d'une clé hors schéma conservée.
func (c *HeroContent) Extra(key string) (json.RawMessage, bool) {
	v, ok := c.extra[key]
	return v, ok
}

// SlideIndex renvoie la position d'une slide, -1 si absente.
func (c *HeroContent) SlideIndex(id string) int {
	for i := range c.Slides {
		if c.Slides[i].ID == id {
			return i
		}
	}
	return -1
}

// AddSlide ajoute en fin de liste une slide construite depuis le modèle par
// défaut, avec un identifiant fraîchement généré, et la renvoie.
func (c *HeroContent) AddSlide() *HeroSlide {
	c.Slides = append(c.Slides, defaultHeroSlide())
	return &c.Slides[len(c.Slides)-1]
}

// DuplicateSlide clone la slide, lui donne un nouvel id, suffixe son titre de
// " (Copie)" et l'ajoute en fin de liste (pas à côté de la source).
func (c *HeroContent) DuplicateSlide(id string) (*HeroSlide, error) {
	i := c.SlideIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	dup := c.Slides[i]
	dup.ID = newID("slide")
	dup.Title += CopySuffix
	c.Slides = append(c.Slides, dup)
	return &c.Slides[len(c.Slides)-1], nil
}

// RemoveSlide supprime une slide. Refusé si elle est la dernière : une section
// hero doit toujours conserver au moins une slide.
func (c *HeroContent) RemoveSlide(id string) error {
	i := c.SlideIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if len(c.Slides) <= 1 {
		return domain.ErrLastSlide
	}
	c.Slides = append(c.Slides[:i], c.Slides[i+1:]...)
	return nil
}

// SetSlides remplace la liste entière (réordonnancement soumis en bloc).
// L'ordre des slides hero est implicite dans la position du tableau.
func (c *HeroContent) SetSlides(slides []HeroSlide) {
	c.Slides = slides
}

// ResolvedSlides renvoie les slides prêtes pour le rendu : la charge utile de
// la carte fidélité est fusionnée dans toute slide marquée isLoyaltyCard.
func (c *HeroContent) ResolvedSlides() []HeroSlide {
	out := make([]HeroSlide, len(c.Slides))
	copy(out, c.Slides)
	if !c.LoyaltyCard.Enabled {
		return out
	}
	for i := range out {
		if !out[i].IsLoyaltyCard {
			continue
		}
		out[i].Title = c.LoyaltyCard.Title
		out[i].Subtitle = c.LoyaltyCard.Subtitle
		out[i].Description = c.LoyaltyCard.Description
		out[i].Accent = c.LoyaltyCard.AccentColor
		out[i].TextColor = c.LoyaltyCard.TextColor
		out[i].StampCount = c.LoyaltyCard.StampCount
	}
	return out
}
