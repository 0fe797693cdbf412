package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/gcbaptista/smart-selector/model"
)

func TestAnalyticsService_TrackMatchEvent(t *testing.T) {
	service := NewService()

	event := model.MatchEvent{
		RequestID:      "req-1",
		Queries:        []string{"I like alf."},
		CandidateCount: 2,
		MatchedCount:   1,
		ResponseTime:   50 * time.Microsecond,
	}

	err := service.TrackMatchEvent(event)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify event was stored
	if len(service.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(service.events))
	}

	storedEvent := service.events[0]
	if storedEvent.RequestID != event.RequestID {
		t.Errorf("Expected RequestID %s, got %s", event.RequestID, storedEvent.RequestID)
	}
	if storedEvent.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestAnalyticsService_EventLimit(t *testing.T) {
	service := NewService()

	for i := 0; i < maxEventsToKeep+10; i++ {
		_ = service.TrackMatchEvent(model.MatchEvent{RequestID: fmt.Sprintf("req-%d", i)})
	}

	if len(service.events) != maxEventsToKeep {
		t.Fatalf("Expected %d events, got %d", maxEventsToKeep, len(service.events))
	}
	if service.events[0].RequestID != "req-10" {
		t.Errorf("Expected oldest events to be dropped, first is %s", service.events[0].RequestID)
	}
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	service := NewService()

	events := []model.MatchEvent{
		{Queries: []string{"dog", "cat"}, CandidateCount: 4, MatchedCount: 2, ResponseTime: 500 * time.Microsecond},
		{Queries: []string{"dog"}, CandidateCount: 2, MatchedCount: 0, DefaultCount: 1, ResponseTime: 5 * time.Millisecond},
		{FormatError: true, ResponseTime: 200 * time.Millisecond},
		{Queries: []string{"dog", "bird"}, CandidateCount: 0, DefaultCount: 2, ResponseTime: 50 * time.Millisecond},
	}
	for _, event := range events {
		if err := service.TrackMatchEvent(event); err != nil {
			t.Fatalf("Failed to track event: %v", err)
		}
	}

	dashboard, err := service.GetDashboardData()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dashboard.TotalRequests != 4 {
		t.Errorf("Expected 4 requests, got %d", dashboard.TotalRequests)
	}
	if dashboard.FormatErrors != 1 {
		t.Errorf("Expected 1 format error, got %d", dashboard.FormatErrors)
	}
	if dashboard.TotalQueries != 5 {
		t.Errorf("Expected 5 queries, got %d", dashboard.TotalQueries)
	}
	if dashboard.MatchedQueries != 2 || dashboard.DefaultQueries != 3 {
		t.Errorf("Expected 2 matched / 3 default, got %d / %d", dashboard.MatchedQueries, dashboard.DefaultQueries)
	}
	if dashboard.MatchRate != 40 {
		t.Errorf("Expected match rate 40, got %f", dashboard.MatchRate)
	}
	if dashboard.AvgCandidates != 2 {
		t.Errorf("Expected 2 candidates on average, got %f", dashboard.AvgCandidates)
	}

	dist := dashboard.ResponseTimeDistribution
	if dist.Bucket0To1ms != 1 || dist.Bucket1To10ms != 1 || dist.Bucket10To100ms != 1 || dist.Bucket100msPlus != 1 {
		t.Errorf("Unexpected distribution: %+v", dist)
	}
	if dist.Percentage0To1 != 25 {
		t.Errorf("Expected 25%% in first bucket, got %f", dist.Percentage0To1)
	}

	if len(dashboard.PopularQueries) != 3 {
		t.Fatalf("Expected 3 popular queries, got %d", len(dashboard.PopularQueries))
	}
	if dashboard.PopularQueries[0].Query != "dog" || dashboard.PopularQueries[0].QueryCount != 3 {
		t.Errorf("Expected 'dog' x3 first, got %+v", dashboard.PopularQueries[0])
	}
	if dashboard.PopularQueries[1].Query != "bird" {
		t.Errorf("Expected ties sorted alphabetically, got %+v", dashboard.PopularQueries[1])
	}
}

func TestAnalyticsService_EmptyDashboard(t *testing.T) {
	service := NewService()

	dashboard, err := service.GetDashboardData()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dashboard.TotalRequests != 0 || dashboard.MatchRate != 0 || dashboard.AvgResponseTime != 0 {
		t.Errorf("Expected zero values, got %+v", dashboard)
	}
	if len(dashboard.PopularQueries) != 0 {
		t.Errorf("Expected no popular queries, got %v", dashboard.PopularQueries)
	}
}
