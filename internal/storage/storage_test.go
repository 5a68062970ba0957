package storage

import (
	"path/filepath"
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
	return calendar.Assemble([]*venue.DayResult{day})
}

func TestSaveAndLoadWeek(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	saved := sampleWeek()
	if err := store.SaveWeek(saved, ""); err != nil {
		t.Fatalf("SaveWeek failed: %v", err)
	}

	loaded, err := store.LoadWeek("")
	if err != nil {
		t.Fatalf("LoadWeek failed: %v", err)
	}

	if loaded.StartDate != saved.StartDate || loaded.EndDate != saved.EndDate {
		t.Errorf("date range = %s-%s, expected %s-%s",
			loaded.StartDate, loaded.EndDate, saved.StartDate, saved.EndDate)
	}
	if len(loaded.CalendarGrid) != 1 {
		t.Fatalf("expected 1 grid day, got %d", len(loaded.CalendarGrid))
	}
	offerings := loaded.CalendarGrid["20260209"].SlotsByTime["09:00"]
	if len(offerings) != 1 || offerings[0].VenueID != 86 {
		t.Errorf("unexpected offerings after roundtrip: %+v", offerings)
	}
}

func TestLoadWeekMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := store.LoadWeek("nope.json"); err == nil {
		t.Error("expected an error for a missing week file")
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !strings.HasPrefix(store.Path("x.json"), dir) {
		t.Errorf("Path = %s, expected prefix %s", store.Path("x.json"), dir)
	}
	if err := store.SaveWeek(sampleWeek(), "x.json"); err != nil {
		t.Fatalf("SaveWeek into created directory failed: %v", err)
	}
}
