package model

import "time"

// MatchEvent represents a single handled association request for analytics tracking
type MatchEvent struct {
	RequestID      string        `json:"request_id"`
	Queries        []string      `json:"queries"`
	CandidateCount int           `json:"candidate_count"`
	MatchedCount   int           `json:"matched_count"` // queries that received a real candidate
	DefaultCount   int           `json:"default_count"` // queries that received DefaultChoice
	FormatError    bool          `json:"format_error"`
	ResponseTime   time.Duration `json:"response_time"`
	Timestamp      time.Time     `json:"timestamp"`
}

// PopularQuery represents aggregated data for frequently associated query strings
type PopularQuery struct {
	Query      string `json:"query"`
	QueryCount int    `json:"query_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To1ms      int     `json:"bucket_0_1ms"`
	Bucket1To10ms     int     `json:"bucket_1_10ms"`
	Bucket10To100ms   int     `json:"bucket_10_100ms"`
	Bucket100msPlus   int     `json:"bucket_100ms_plus"`
	Percentage0To1    float64 `json:"percentage_0_1"`
	Percentage1To10   float64 `json:"percentage_1_10"`
	Percentage10To100 float64 `json:"percentage_10_100"`
	Percentage100Plus float64 `json:"percentage_100_plus"`
}

// SystemHealth represents system health metrics
type SystemHealth struct {
	MemoryUsage float64 `json:"memory_usage_percent"`
	Goroutines  int     `json:"goroutines"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics
	TotalRequests   int     `json:"total_requests"`
	FormatErrors    int     `json:"format_errors"`
	TotalQueries    int     `json:"total_queries"`
	MatchedQueries  int     `json:"matched_queries"`
	DefaultQueries  int     `json:"default_queries"`
	MatchRate       float64 `json:"match_rate_percent"`
	AvgResponseTime int64   `json:"avg_response_time_us"` // in microseconds
	AvgCandidates   float64 `json:"avg_candidates"`

	// Detailed analytics
	PopularQueries           []PopularQuery           `json:"popular_queries"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
	SystemHealth             SystemHealth             `json:"system_health"`
}
