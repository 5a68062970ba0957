package venue

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mhofbauer/venue-calendar/internal/slot"
)

func TestHasAvailable(t *testing.T) {
	day := NewDay(86, "Hall A")
	if day.HasAvailable() {
		t.Error("empty day should not have availability")
	}

	day.Slots = append(day.Slots, slot.TimeSlot{Status: slot.StatusBlocked})
	if day.HasAvailable() {
		t.Error("blocked-only day should not have availability")
	}

	day.Slots = append(day.Slots, slot.TimeSlot{Status: slot.StatusAvailable, IsAvailable: true})
	if !day.HasAvailable() {
		t.Error("expected availability after adding an available slot")
	}
}

func TestFailedDay(t *testing.T) {
	result := FailedDay("20260209", errors.New("connection timed out"))

	if !result.Failed() {
		t.Error("expected Failed() to be true")
	}
	if result.Error != "connection timed out" {
		t.Errorf("Error = %q, expected %q", result.Error, "connection timed out")
	}
	if len(result.Venues) != 0 {
		t.Errorf("expected empty venues, got %d", len(result.Venues))
	}
}

func TestDaySerializesEmptySlotsAsArray(t *testing.T) {
	data, err := json.Marshal(NewDay(86, "Hall A"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"available_slots":[]`) {
		t.Errorf("expected empty slot array in output, got %s", data)
	}
}
