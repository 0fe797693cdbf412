package analytics

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/smart-selector/model"
)

const (
	maxEventsToKeep    = 10000 // Keep last 10k events for performance
	popularQueriesSize = 5
)

// Service implements services.EventTracker.
// Events live in memory only; match history is never written to disk.
type Service struct {
	mutex  sync.RWMutex
	events []model.MatchEvent
	now    func() time.Time
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.MatchEvent, 0),
		now:    time.Now,
	}
}

// TrackMatchEvent records a handled association request
func (s *Service) TrackMatchEvent(event model.MatchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	return nil
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dashboard := model.AnalyticsDashboard{
		TotalRequests:            len(s.events),
		PopularQueries:           s.getPopularQueries(s.events),
		ResponseTimeDistribution: s.getResponseTimeDistribution(s.events),
		SystemHealth:             s.getSystemHealth(),
	}

	candidates := 0
	associated := 0
	for _, event := range s.events {
		if event.FormatError {
			dashboard.FormatErrors++
			continue
		}
		associated++
		candidates += event.CandidateCount
		dashboard.TotalQueries += len(event.Queries)
		dashboard.MatchedQueries += event.MatchedCount
		dashboard.DefaultQueries += event.DefaultCount
	}

	if dashboard.TotalQueries > 0 {
		dashboard.MatchRate = float64(dashboard.MatchedQueries) / float64(dashboard.TotalQueries) * 100
	}
	if associated > 0 {
		dashboard.AvgCandidates = float64(candidates) / float64(associated)
	}
	dashboard.AvgResponseTime = s.calculateAvgResponseTime(s.events)

	return dashboard, nil
}

// calculateAvgResponseTime calculates average response time for events in microseconds
func (s *Service) calculateAvgResponseTime(events []model.MatchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	avgDuration := total / time.Duration(len(events))
	return avgDuration.Microseconds()
}

// getPopularQueries returns the most frequently associated query strings
func (s *Service) getPopularQueries(events []model.MatchEvent) []model.PopularQuery {
	queryCounts := make(map[string]int)

	for _, event := range events {
		for _, query := range event.Queries {
			if query != "" {
				queryCounts[query]++
			}
		}
	}

	queries := make([]model.PopularQuery, 0, len(queryCounts))
	for query, count := range queryCounts {
		queries = append(queries, model.PopularQuery{Query: query, QueryCount: count})
	}

	// Sort by count descending, then alphabetically for stable output
	sort.Slice(queries, func(i, j int) bool {
		if queries[i].QueryCount != queries[j].QueryCount {
			return queries[i].QueryCount > queries[j].QueryCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > popularQueriesSize {
		queries = queries[:popularQueriesSize]
	}
	return queries
}

// getResponseTimeDistribution returns response time distribution
func (s *Service) getResponseTimeDistribution(events []model.MatchEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		switch {
		case event.ResponseTime <= time.Millisecond:
			dist.Bucket0To1ms++
		case event.ResponseTime <= 10*time.Millisecond:
			dist.Bucket1To10ms++
		case event.ResponseTime <= 100*time.Millisecond:
			dist.Bucket10To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	// Calculate percentages
	dist.Percentage0To1 = float64(dist.Bucket0To1ms) / float64(total) * 100
	dist.Percentage1To10 = float64(dist.Bucket1To10ms) / float64(total) * 100
	dist.Percentage10To100 = float64(dist.Bucket10To100ms) / float64(total) * 100
	dist.Percentage100Plus = float64(dist.Bucket100msPlus) / float64(total) * 100

	return dist
}

// getSystemHealth returns current system health metrics
func (s *Service) getSystemHealth() model.SystemHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// Calculate memory usage percentage (simplified)
	memoryUsage := float64(m.Alloc) / float64(m.Sys) * 100

	return model.SystemHealth{
		MemoryUsage: memoryUsage,
		Goroutines:  runtime.NumGoroutine(),
	}
}
