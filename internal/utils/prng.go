// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-lane-defense/internal/defs"
)

// RandomSource is the only randomness the engine needs.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PRNGService оборачивает стандартный генератор случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a seeded service. A zero seed means the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// Each value is reduced modulo n.
type SequenceSource struct {
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// ChooseMonster picks a monster kind uniformly at random.
func ChooseMonster(src RandomSource) defs.MonsterKind {
	kinds := defs.MonsterKinds()
	return kinds[src.Intn(len(kinds))]
}
