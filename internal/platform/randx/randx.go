// Package randx holds the injectable randomness source used by the content
// generators. A fixed seed makes every draw reproducible.
package randx

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the generators draw from.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a PCG-backed source. seed == 0 seeds from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Locked serialises access to a Source so one generator can be shared
// between concurrent requests.
type Locked struct {
	mu  sync.Mutex
	src Source
}

func NewLocked(seed int64) *Locked {
	return &Locked{src: New(seed)}
}

func Wrap(src Source) *Locked {
	if l, ok := src.(*Locked); ok {
		return l
	}
	return &Locked{src: src}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Pick returns a uniformly chosen element. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Chance reports true with probability p. p <= 0 never draws true and p >= 1
// always does, without consuming a draw.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Sample draws min(k, len(items)) elements without replacement, in draw order.
// items is not modified.
func Sample[T any](src Source, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	if k > len(items) {
		k = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
