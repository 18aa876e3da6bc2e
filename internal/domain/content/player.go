package content

import (
	"sync"
	"time"
)

// NextIndex avance l'index actif en bouclant sur la longueur de la liste.
func NextIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}

// IntervalFor renvoie la durée d'affichage de la slide à l'index donné :
// loyaltyCardInterval pour une carte fidélité, interval sinon.
func (c *HeroContent) IntervalFor(index int) time.Duration {
	if index >= 0 && index < len(c.Slides) && c.Slides[index].IsLoyaltyCard {
		return time.Duration(c.SliderConfig.LoyaltyCardInterval) * time.Millisecond
	}
	return time.Duration(c.SliderConfig.Interval) * time.Millisecond
}

// Interval renvoie la durée d'affichage d'un item du carrousel (constante).
func (c *CollectionContent) Interval() time.Duration {
	return time.Duration(c.CarouselConfig.Interval) * time.Millisecond
}

// Player simule l'autoplay d'un slider/carrousel pour l'aperçu d'édition :
// un timer avance l'index actif à chaque intervalle tant que la lecture est
// active. Changer le nombre d'éléments ou l'index pendant la lecture ne
// réinitialise pas la phase du timer en cours.
type Player struct {
	mu        sync.Mutex
	index     int
	count     int
	playing   bool
	stop      chan struct{}
	interval  func(index int) time.Duration
	onAdvance func(index int)
}

// NewPlayer construit un player arrêté. interval est consulté avant chaque
// pas (il peut varier par slide) ; onAdvance est appelé après chaque avance.
func NewPlayer(count int, interval func(index int) time.Duration, onAdvance func(index int)) *Player {
	return &Player{count: count, interval: interval, onAdvance: onAdvance}
}

// Index renvoie l'index actif courant.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Playing indique si la lecture est en cours.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// SetIndex positionne l'index actif sans toucher au timer en cours.
func (p *Player) SetIndex(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i >= 0 && (p.count == 0 || i < p.count) {
		p.index = i
	}
}

// SetCount met à jour le nombre d'éléments sans toucher au timer en cours.
func (p *Player) SetCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = n
	if p.count > 0 && p.index >= p.count {
		p.index = p.count - 1
	}
}

// Play démarre la lecture. Sans effet si déjà en cours.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing || p.count <= 0 {
		return
	}
	p.playing = true
	p.stop = make(chan struct{})
	go p.run(p.stop)
}

// Pause arrête la lecture. Sans effet si déjà arrêtée.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.playing = false
	close(p.stop)
}

func (p *Player) run(stop chan struct{}) {
	for {
		p.mu.Lock()
		d := p.interval(p.index)
		p.mu.Unlock()
		if d <= 0 {
			d = time.Millisecond
		}
		t := time.NewTimer(d)
		select {
		case <-stop:
			t.Stop()
			return
		case <-t.C:
			p.mu.Lock()
			p.index = NextIndex(p.index, p.count)
			idx, cb := p.index, p.onAdvance
			p.mu.Unlock()
			if cb != nil {
				cb(idx)
			}
		}
	}
}
