package logger

import (
	"testing"
	"time"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		minLevel Level
		level    Level
		logged   bool
	}{
		{LevelInfo, LevelDebug, false},
		{LevelInfo, LevelInfo, true},
		{LevelInfo, LevelError, true},
		{LevelError, LevelWarn, false},
		{LevelDebug, LevelDebug, true},
	}

	for _, tt := range tests {
		got := levelOrder[tt.level] >= levelOrder[tt.minLevel]
		if got != tt.logged {
			t.Errorf("min=%s level=%s: logged=%v, expected %v", tt.minLevel, tt.level, got, tt.logged)
		}
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("scraper.days_fetched")
	m.IncrCounter("scraper.days_fetched")
	m.IncrCounter("scraper.days_failed")

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["scraper.days_fetched"] != 2 {
		t.Errorf("days_fetched = %d, expected 2", counters["scraper.days_fetched"])
	}
	if counters["scraper.days_failed"] != 1 {
		t.Errorf("days_failed = %d, expected 1", counters["scraper.days_failed"])
	}
}

func TestMetricsTimings(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("scraper.fetch_day", 100*time.Millisecond)
	m.RecordTiming("scraper.fetch_day", 300*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})

	stats, ok := timings["scraper.fetch_day"]
	if !ok {
		t.Fatal("expected fetch_day timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("count = %v, expected 2", stats["count"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("average = %v, expected 200ms", stats["average"])
	}
	if stats["min"] != "100ms" || stats["max"] != "300ms" {
		t.Errorf("min/max = %v/%v, expected 100ms/300ms", stats["min"], stats["max"])
	}
}
