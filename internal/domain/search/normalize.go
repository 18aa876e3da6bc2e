// Package search fournit la normalisation des termes de recherche du
// catalogue : insensible à la casse et aux accents ("Thé vert" matche "the").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold renvoie la forme repliée d'une chaîne : minuscules, sans diacritiques.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrée non normalisable : on replie au moins la casse.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches indique si needle (replié) apparaît dans haystack (replié).
// Un needle vide matche tout.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
