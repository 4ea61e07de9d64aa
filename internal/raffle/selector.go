// Package raffle draws raffle winners uniformly from a participant list.
package raffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

// Selector picks one element uniformly at random. Safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a deterministic selector for the given PCG seed
func NewSelector(seed1, seed2 uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewRandomSelector returns a selector seeded from crypto/rand
func NewRandomSelector() (*Selector, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSelector(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
}

// Pick returns one participant with probability 1/len(participants).
// Duplicated ids weigh proportionally to their multiplicity.
func (s *Selector) Pick(participants []string) (string, error) {
	if len(participants) == 0 {
		return "", models.ErrNoParticipants
	}
	s.mu.Lock()
	i := s.rng.IntN(len(participants))
	s.mu.Unlock()
	return participants[i], nil
}
