package services

import (
	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/model"
)

// ReplyKind tags which of the two reply shapes a Reply carries.
type ReplyKind int

const (
	// ReplyAssociations carries one chosen file per query string
	ReplyAssociations ReplyKind = iota
	// ReplyFormatError means the request was rejected before any matching
	ReplyFormatError
)

// String returns the reply kind as used in logs.
func (k ReplyKind) String() string {
	switch k {
	case ReplyAssociations:
		return "associations"
	case ReplyFormatError:
		return "format_error"
	default:
		return "unknown"
	}
}

// Reply is the tagged result of handling one association request.
// Request and Associations are set only for ReplyAssociations; Err only for
// ReplyFormatError.
type Reply struct {
	Kind         ReplyKind
	Request      model.AssociationRequest
	Associations model.Associations
	Err          error
}

// OK reports whether the reply carries associations.
func (r Reply) OK() bool {
	return r.Kind == ReplyAssociations
}

// Associator handles association requests end to end
type Associator interface {
	Handle(payload []byte) Reply
	Associate(req model.AssociationRequest) model.Associations
	Keywords(files []string) []string
	Settings() config.MatcherSettings
}

// EventTracker records handled requests for analytics
type EventTracker interface {
	TrackMatchEvent(event model.MatchEvent) error
	GetDashboardData() (model.AnalyticsDashboard, error)
}

// CandidateLister supplies the current list of candidate file names
type CandidateLister interface {
	Files() ([]string, error)
}
