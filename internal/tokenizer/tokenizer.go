package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// separatorRegex matches runs of the characters that separate words inside a file name.
var separatorRegex = regexp.MustCompile(`[_\-,.]+`)

// ExtensionStripper removes a file extension from a candidate name before it is split.
type ExtensionStripper interface {
	Strip(name string) string
}

// FixedWidthExtension treats the last four characters as an extension when the
// fourth-from-last character is a dot ("photo.png" -> "photo").
// Names shorter than four characters, or with extensions that are not three
// characters long, are returned unchanged.
type FixedWidthExtension struct{}

// Strip implements ExtensionStripper.
func (FixedWidthExtension) Strip(name string) string {
	runes := []rune(name)
	if len(runes) < 4 || runes[len(runes)-4] != '.' {
		return name
	}
	return string(runes[:len(runes)-4])
}

// LastDotExtension strips everything from the last dot onwards. A dot in the
// first position (hidden files such as ".profile") does not start an extension.
type LastDotExtension struct{}

// Strip implements ExtensionStripper.
func (LastDotExtension) Strip(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name
	}
	return name[:idx]
}

// Strategy names accepted by StripperFor.
const (
	StrategyFixedWidth = "fixed_width"
	StrategyLastDot    = "last_dot"
)

// StripperFor returns the extension stripper registered under name.
// Unknown names fall back to FixedWidthExtension.
func StripperFor(name string) ExtensionStripper {
	if name == StrategyLastDot {
		return LastDotExtension{}
	}
	return FixedWidthExtension{}
}

// Tokenizer decomposes candidate names into subtokens.
type Tokenizer struct {
	stripper ExtensionStripper
}

// New creates a Tokenizer. A nil stripper means FixedWidthExtension.
func New(stripper ExtensionStripper) *Tokenizer {
	if stripper == nil {
		stripper = FixedWidthExtension{}
	}
	return &Tokenizer{stripper: stripper}
}

// Tokenize strips the extension from name and splits the remainder on runs of
// '_', '-', ',' and '.'. Order is preserved, case is preserved and duplicates are kept.
func (t *Tokenizer) Tokenize(name string) []string {
	base := t.stripper.Strip(name)
	split := separatorRegex.Split(base, -1)

	tokens := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Tokenize decomposes name using the default fixed-width extension rule.
func Tokenize(name string) []string {
	return New(nil).Tokenize(name)
}

// CleanToken removes every character that is not a letter or a digit.
func CleanToken(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, token)
}

// Keywords returns the distinct subtokens of at least minLength characters
// found across all candidate names, in first-seen order.
func (t *Tokenizer) Keywords(candidates []string, minLength int) []string {
	keywords := make([]string, 0)
	seen := make(map[string]struct{})

	for _, candidate := range candidates {
		for _, token := range t.Tokenize(candidate) {
			if utf8.RuneCountInString(token) < minLength {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			keywords = append(keywords, token)
		}
	}
	return keywords
}
