package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mhofbauer/venue-calendar/internal/calendar"
	"github.com/mhofbauer/venue-calendar/internal/slot"
	"github.com/mhofbauer/venue-calendar/internal/venue"
)

func sampleWeek() *calendar.Week {
	day := venue.NewDayResult("20260209")
	hall := venue.NewDay(86, "Halle A")
	hall.Slots = append(hall.Slots, slot.TimeSlot{
		Time:        "09:00-10:00",
		TimeFrom:    "09:00",
		TimeTo:      "10:00",
		Status:      slot.StatusAvailable,
		IsAvailable: true,
	})
	day.Venues = append(day.Venues, hall)
	day.TotalVenues = 1
	day.VenuesWithSlots = 1

	failed := venue.FailedDay("20260210", errors.New("connection timed out"))
	return calendar.Assemble([]*venue.DayResult{day, failed})
}

func TestWriteTextSummary(t *testing.T) {
	var buf strings.Builder
	if err := WriteOutput(&buf, sampleWeek(), "/tmp/venue_calendar.json", FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Date Range: 20260209 - 20260210",
		"Total Days: 2",
		"Time Slots: 1 unique times",
		"Saved to: /tmp/venue_calendar.json",
		"Mon 09.02: 1 slots",
		"20260210: fetch failed (connection timed out)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSONIsWireContract(t *testing.T) {
	var buf strings.Builder
	if err := WriteOutput(&buf, sampleWeek(), "", FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"calendar_grid", "sorted_times", "sorted_dates",
		"start_date", "end_date", "total_days", "all_days_data",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected top-level key %q in JSON output", key)
		}
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf strings.Builder
	if err := WriteOutput(&buf, sampleWeek(), "", OutputFormat("xml")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
