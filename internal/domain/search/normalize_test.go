package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marchand/boutique-api/internal/domain/search"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "the vert", search.Fold("Thé Vert"))
	assert.Equal(t, "creme brulee", search.Fold("Crème Brûlée"))
	assert.Equal(t, "", search.Fold(""))
}

func TestMatches(t *testing.T) {
	assert.True(t, search.Matches("Thé vert bio", "the"))
	assert.True(t, search.Matches("Éclair au café", "cafe"))
	assert.True(t, search.Matches("n'importe quoi", ""))
	assert.False(t, search.Matches("Madeleine", "chocolat"))
}
