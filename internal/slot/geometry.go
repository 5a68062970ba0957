package slot

import "fmt"

const (
	// GridStartHour is the first hour shown in the booking grid.
	GridStartHour = 7
	// UnitMinutes is the duration one grid column represents.
	UnitMinutes = 5
	// UnitsPerHour is the number of grid columns in one display hour.
	UnitsPerHour = 12
)

// TimeRange is a clock range within a single day, zero-padded HH:MM.
type TimeRange struct {
	From string
	To   string
}

// String renders the range as "HH:MM-HH:MM".
func (r TimeRange) String() string {
	return r.From + "-" + r.To
}

// DecodeGeometry converts a cell's grid position into a clock range.
// cellIndex counts the 5-minute units already consumed in the row and
// colspan is the cell's width in units. Spans longer than an hour and
// hour rollover fall out of the unit arithmetic.
func DecodeGeometry(cellIndex, colspan, startHour int) TimeRange {
	return TimeRange{
		From: clockAt(cellIndex, startHour),
		To:   clockAt(cellIndex+colspan, startHour),
	}
}

func clockAt(units, startHour int) string {
	hour := startHour + units/UnitsPerHour
	minute := units % UnitsPerHour * UnitMinutes
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
