// Package selector collapses each query's matched candidates into one choice.
package selector

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/smart-selector/internal/matcher"
	"github.com/gcbaptista/smart-selector/model"
)

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// LockedSource is a RandomSource that is safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource creates a LockedSource. A zero seed seeds from the clock.
func NewLockedSource(seed int64) *LockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedSource{rnd: rand.New(rand.NewSource(seed))} // #nosec G404 -- tie-break, not security sensitive
}

// Intn implements RandomSource.
func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Select returns exactly one value per query: a uniformly chosen member of
// its association set, or model.DefaultChoice when the set is empty.
// Queries are visited in sorted order so a seeded source gives repeatable results.
func Select(associations matcher.Associations, rng RandomSource) map[string]string {
	queries := make([]string, 0, len(associations))
	for query := range associations {
		queries = append(queries, query)
	}
	sort.Strings(queries)

	result := make(map[string]string, len(associations))
	for _, query := range queries {
		result[query] = Pick(associations[query], rng)
	}
	return result
}

// Pick chooses one of candidates, or model.DefaultChoice if there are none.
func Pick(candidates []string, rng RandomSource) string {
	if len(candidates) == 0 {
		return model.DefaultChoice
	}
	return candidates[rng.Intn(len(candidates))]
}
