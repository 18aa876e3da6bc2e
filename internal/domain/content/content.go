// Package content définit le modèle de contenu typé des sections de la page
// d'accueil (union discriminée par HomeSection.Type) et les opérations des
// éditeurs : hydratation des valeurs par défaut, ajout, duplication,
// suppression et réordonnancement des slides/items.
//
// L'hydratation est un merge, jamais un écrasement : les clés déjà présentes
// dans le blob persisté sont conservées telles quelles, y compris les clés
// inconnues, pour garantir un aller-retour sans perte via le champ content.
package content

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CopySuffix suffixe ajouté au titre d'une slide ou d'une section dupliquée.
const CopySuffix = " (Copie)"

// newID génère un identifiant unique pour une slide ou un item.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Normalize hydrate le blob content d'une section selon son type et renvoie le
// blob complété. Les types sans schéma connu passent tels quels.
func Normalize(sectionType string, raw json.RawMessage) (json.RawMessage, error) {
	switch sectionType {
	case "hero":
		c, err := HydrateHero(raw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(c)
	case "collection":
		c, err := HydrateCollection(raw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(c)
	default:
		if len(raw) == 0 {
			return json.RawMessage(`{}`), nil
		}
		return raw, nil
	}
}

// splitKnown décode un blob en gardant de côté les clés hors schéma.
// known liste les clés consommées par l'appelant ; le reste part dans extra.
func splitKnown(raw json.RawMessage, known ...string) (map[string]json.RawMessage, map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, nil, err
		}
	}
	extra := map[string]json.RawMessage{}
	for k, v := range fields {
		keep := false
		for _, kn := range known {
			if k == kn {
				keep = true
				break
			}
		}
		if !keep {
			extra[k] = v
		}
	}
	return fields, extra, nil
}

// mergeMarshal sérialise les clés connues par-dessus les clés conservées.
func mergeMarshal(extra map[string]json.RawMessage, known map[string]any) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}
	return json.Marshal(out)
}
