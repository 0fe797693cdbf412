// Package matcher associates query strings with candidate file names by
// bidirectional substring containment.
package matcher

import (
	"strings"

	"github.com/gcbaptista/smart-selector/internal/filter"
	"github.com/gcbaptista/smart-selector/internal/tokenizer"
)

// Associations maps each query to the candidates it matched, in the order
// they were first found. A query with no match maps to an empty slice.
type Associations map[string][]string

// IndexedCandidate is a candidate name together with its eligible subtokens.
type IndexedCandidate struct {
	Name      string
	lowerName string
	Subtokens []string // cleaned, lowercased, eligible
}

// Index is the subtoken index for one matching run.
type Index []IndexedCandidate

// Matcher runs the forward and reverse passes. It holds only read-only
// configuration, so one Matcher can serve concurrent runs.
type Matcher struct {
	tokenizer *tokenizer.Tokenizer
	policy    *filter.Policy
}

// New creates a Matcher.
func New(tok *tokenizer.Tokenizer, policy *filter.Policy) *Matcher {
	if tok == nil {
		tok = tokenizer.New(nil)
	}
	if policy == nil {
		policy = filter.NewPolicy(nil, filter.DefaultMinLength)
	}
	return &Matcher{tokenizer: tok, policy: policy}
}

// BuildIndex tokenizes every candidate once. Subtokens that fail the filter
// policy are dropped, so a candidate may end up with none.
func (m *Matcher) BuildIndex(candidates []string) Index {
	idx := make(Index, 0, len(candidates))
	for _, name := range candidates {
		entry := IndexedCandidate{
			Name:      name,
			lowerName: strings.ToLower(name),
			Subtokens: make([]string, 0),
		}
		for _, raw := range m.tokenizer.Tokenize(name) {
			if cleaned, ok := m.policy.Clean(raw); ok {
				entry.Subtokens = append(entry.Subtokens, cleaned)
			}
		}
		idx = append(idx, entry)
	}
	return idx
}

// Match returns, for every query, the set of candidates found by either pass.
func (m *Matcher) Match(queries, candidates []string) Associations {
	idx := m.BuildIndex(candidates)

	sets := make(map[string]*orderedSet, len(queries))
	for _, q := range queries {
		if _, ok := sets[q]; !ok {
			sets[q] = newOrderedSet()
		}
	}

	for _, q := range queries {
		m.forward(q, idx, sets[q])
	}
	for _, q := range queries {
		m.reverse(q, idx, sets[q])
	}

	result := make(Associations, len(sets))
	for q, set := range sets {
		result[q] = set.items
	}
	return result
}

// forward adds every candidate whose name contains an eligible word of the query.
func (m *Matcher) forward(query string, idx Index, set *orderedSet) {
	for _, word := range strings.Fields(query) {
		cleaned, ok := m.policy.Clean(word)
		if !ok {
			continue
		}
		for _, c := range idx {
			if strings.Contains(c.lowerName, cleaned) {
				set.add(c.Name)
			}
		}
	}
}

// reverse adds every candidate with a subtoken contained in the query.
func (m *Matcher) reverse(query string, idx Index, set *orderedSet) {
	lowerQuery := strings.ToLower(query)
	for _, c := range idx {
		for _, sub := range c.Subtokens {
			if strings.Contains(lowerQuery, sub) {
				set.add(c.Name)
				break
			}
		}
	}
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: make([]string, 0), seen: make(map[string]struct{})}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}
