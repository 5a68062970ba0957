package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mhofbauer/venue-calendar/internal/calendar"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the assembled week in the specified format.
func WriteOutput(w io.Writer, week *calendar.Week, savedTo string, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, week)
	case FormatText:
		return writeText(w, week, savedTo)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the full week structure as JSON.
func writeJSON(w io.Writer, week *calendar.Week) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(week)
}

// writeText outputs a human-readable summary of the run.
func writeText(w io.Writer, week *calendar.Week, savedTo string) error {
	fmt.Fprintln(w, "=== WEEKLY CALENDAR SUMMARY ===")
	fmt.Fprintf(w, "Date Range: %s - %s\n", week.StartDate, week.EndDate)
	fmt.Fprintf(w, "Total Days: %d\n", week.TotalDays)
	fmt.Fprintf(w, "Time Slots: %d unique times\n", len(week.SortedTimes))
	if savedTo != "" {
		fmt.Fprintf(w, "Saved to: %s\n", savedTo)
	}

	fmt.Fprintln(w, "\nAvailability by Day:")
	for _, date := range week.SortedDates {
		if grid, ok := week.CalendarGrid[date]; ok {
			fmt.Fprintf(w, "  %s: %d slots\n", grid.DayName, week.OfferingCount(date))
			continue
		}
		// Failed days have no grid column; show why.
		fmt.Fprintf(w, "  %s: fetch failed", date)
		for _, day := range week.AllDaysData {
			if day.Date == date && day.Error != "" {
				fmt.Fprintf(w, " (%s)", day.Error)
				break
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}
