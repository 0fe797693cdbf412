// Package association validates association requests and drives the
// tokenizer, matcher and selector for each of them.
package association

import (
	"log"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/filter"
	"github.com/gcbaptista/smart-selector/internal/matcher"
	"github.com/gcbaptista/smart-selector/internal/selector"
	"github.com/gcbaptista/smart-selector/internal/tokenizer"
	"github.com/gcbaptista/smart-selector/model"
	"github.com/gcbaptista/smart-selector/services"
)

// Service implements services.Associator.
// Every request builds its own subtoken index and association sets; the
// Service itself only holds read-only configuration and the random source.
type Service struct {
	settings  config.MatcherSettings
	tokenizer *tokenizer.Tokenizer
	policy    *filter.Policy
	matcher   *matcher.Matcher
	rng       selector.RandomSource
}

// NewService creates a new association Service. A nil rng uses a
// selector.LockedSource seeded from settings.Seed.
func NewService(settings config.MatcherSettings, rng selector.RandomSource) *Service {
	settings.ApplyDefaults()
	if rng == nil {
		rng = selector.NewLockedSource(settings.Seed)
	}

	tok := tokenizer.New(tokenizer.StripperFor(settings.ExtensionStrategy))
	policy := filter.NewPolicy(settings.Stopwords, settings.MinTokenLength)

	return &Service{
		settings:  settings,
		tokenizer: tok,
		policy:    policy,
		matcher:   matcher.New(tok, policy),
		rng:       rng,
	}
}

// Handle validates payload and, if it is well formed, returns the selected
// file for every query. Malformed payloads produce a ReplyFormatError and no
// matching work is done.
func (s *Service) Handle(payload []byte) services.Reply {
	req, err := ParseRequest(payload)
	if err != nil {
		log.Printf("Error: Request contained improper structure: %v", err)
		return services.Reply{Kind: services.ReplyFormatError, Err: err}
	}

	return services.Reply{
		Kind:         services.ReplyAssociations,
		Request:      req,
		Associations: s.Associate(req),
	}
}

// Associate runs the matcher and selector over an already validated request.
func (s *Service) Associate(req model.AssociationRequest) model.Associations {
	matched := s.matcher.Match(req.Strings, req.Files)
	return model.Associations(selector.Select(matched, s.rng))
}

// Keywords returns the distinct subtokens of files that are long enough to be
// matched. Stopwords are dropped since they never match anything.
func (s *Service) Keywords(files []string) []string {
	keywords := s.tokenizer.Keywords(files, s.policy.MinLength())
	eligible := keywords[:0]
	for _, keyword := range keywords {
		if !s.policy.IsStopword(keyword) {
			eligible = append(eligible, keyword)
		}
	}
	return eligible
}

// Settings returns a copy of the matcher settings in effect.
func (s *Service) Settings() config.MatcherSettings {
	settings := s.settings
	settings.Stopwords = append([]string(nil), s.settings.Stopwords...)
	return settings
}
