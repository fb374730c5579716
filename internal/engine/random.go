package engine

import (
	"math/rand"
	"slices"
	"time"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns a source seeded for this run only.
func NewRandomizer() Randomizer {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
}

// sampleAnimals draws k distinct animals with a partial Fisher-Yates shuffle.
func sampleAnimals(rng Randomizer, k int) []entity.Animal {
	pool := slices.Clone(entity.Animals)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
