package content_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/domain/content"
)

func TestNextIndex_Boucle(t *testing.T) {
	assert.Equal(t, 1, content.NextIndex(0, 3))
	assert.Equal(t, 2, content.NextIndex(1, 3))
	assert.Equal(t, 0, content.NextIndex(2, 3))
	assert.Equal(t, 0, content.NextIndex(5, 0), "liste vide : index figé à 0")
}

// L'intervalle de la carte fidélité s'applique quand la slide active est marquée.
func TestIntervalFor_CarteFidelite(t *testing.T) {
	raw := json.RawMessage(`{
		"sliderConfig": {"interval": 5000, "loyaltyCardInterval": 8000},
		"slides": [{"id": "s1"}, {"id": "s2", "isLoyaltyCard": true}]
	}`)
	c, err := content.HydrateHero(raw)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, c.IntervalFor(0))
	assert.Equal(t, 8*time.Second, c.IntervalFor(1))
	assert.Equal(t, 5*time.Second, c.IntervalFor(99), "index hors bornes = intervalle standard")
}

func TestPlayer_AvanceEtPause(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	done := make(chan struct{})

	p := content.NewPlayer(3, func(int) time.Duration { return 5 * time.Millisecond }, func(i int) {
		mu.Lock()
		seen = append(seen, i)
		n := len(seen)
		mu.Unlock()
		if n == 4 {
			close(done)
		}
	})

	p.Play()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("le player n'a pas avancé")
	}
	p.Pause()
	assert.False(t, p.Playing())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 0, 1}, seen[:4], "l'index boucle sur le nombre de slides")
}

func TestPlayer_SetCountPendantLectureNeResetPas(t *testing.T) {
	p := content.NewPlayer(5, func(int) time.Duration { return time.Hour }, nil)
	p.Play()
	defer p.Pause()

	p.SetIndex(4)
	p.SetCount(2) // l'index actif est ramené dans les bornes
	assert.Equal(t, 1, p.Index())
	assert.True(t, p.Playing())
}

func TestPlayer_PlayIdempotent(t *testing.T) {
	p := content.NewPlayer(2, func(int) time.Duration { return time.Hour }, nil)
	p.Play()
	p.Play()
	p.Pause()
	p.Pause()
	assert.False(t, p.Playing())
}
