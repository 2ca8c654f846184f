// Package source provides the random integer draws color generation is built
// on.
package source

import (
	"math/rand"
	"sync"
	"time"
)

// Source draws uniformly distributed integers in [lower, upper], bounds
// included. An inverted interval collapses to lower.
type Source interface {
	Between(lower, upper int) int
}

// Seeder is a Source that can be reinitialized.
type Seeder interface {
	Source
	Seed(seed int64)
}

// Locked is a math/rand generator behind a single mutex. Every draw and every
// reseed takes the lock, so it is safe for concurrent use.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Seeder = (*Locked)(nil)

// NewLocked returns a generator seeded with seed.
func NewLocked(seed int64) *Locked {
	return &Locked{rng: rand.New(rand.NewSource(seed))}
}

// NewLockedNow returns a generator seeded from the wall clock.
func NewLockedNow() *Locked {
	return NewLocked(time.Now().UnixNano())
}

// Between implements Source.
func (l *Locked) Between(lower, upper int) int {
	if upper <= lower {
		return lower
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return lower + l.rng.Intn(upper-lower+1)
}

// Seed discards the generator state and restarts it from seed.
func (l *Locked) Seed(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng = rand.New(rand.NewSource(seed))
}

// SeedNow reseeds from the wall clock.
func (l *Locked) SeedNow() {
	l.Seed(time.Now().UnixNano())
}
