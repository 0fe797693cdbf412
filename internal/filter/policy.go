// Package filter decides which tokens take part in matching.
package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gcbaptista/smart-selector/internal/tokenizer"
)

// DefaultMinLength is the shortest token length that is ever matched.
const DefaultMinLength = 3

// Policy is an immutable stopword set plus a minimum token length.
// It is safe for concurrent use.
type Policy struct {
	stopwords map[string]struct{}
	minLength int
}

// NewPolicy builds a Policy. Stopwords are compared case-insensitively.
// A minLength below 1 uses DefaultMinLength.
func NewPolicy(stopwords []string, minLength int) *Policy {
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Policy{stopwords: set, minLength: minLength}
}

// Clean strips punctuation from token and reports whether what remains is
// eligible for matching. The returned token is lowercased.
func (p *Policy) Clean(token string) (string, bool) {
	cleaned := strings.ToLower(tokenizer.CleanToken(token))

	if _, stop := p.stopwords[cleaned]; stop {
		return cleaned, false
	}
	if utf8.RuneCountInString(cleaned) < p.minLength {
		return cleaned, false
	}
	if isDigits(cleaned) {
		return cleaned, false
	}
	return cleaned, true
}

// Eligible reports whether token takes part in matching.
func (p *Policy) Eligible(token string) bool {
	_, ok := p.Clean(token)
	return ok
}

// IsStopword reports whether word is in the stopword set.
func (p *Policy) IsStopword(word string) bool {
	_, ok := p.stopwords[strings.ToLower(word)]
	return ok
}

// MinLength returns the configured minimum token length.
func (p *Policy) MinLength() int {
	return p.minLength
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
