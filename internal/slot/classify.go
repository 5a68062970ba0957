package slot

import (
	"regexp"
	"strings"
)

// Style classes the booking grid puts on slot cells.
const (
	classNoDisplay = "noDisplay"
	classFreeSlot  = "free-slots"
	classBlocked   = "blocked-slot"
)

// bookActionPattern matches the inline booking call, e.g.
// book(86,'202602090900','202602091000')
var bookActionPattern = regexp.MustCompile(`book\((\d+),'([^']+)','([^']+)'\)`)

// Classification is the outcome of inspecting one slot cell.
type Classification struct {
	Status      Status
	IsAvailable bool
	Reason      string
	// BookedRange is set when the booking action carried explicit
	// timestamps. It is authoritative over the geometry-derived range.
	BookedRange *TimeRange
}

// Classify inspects a cell's style classes, inline booking action and
// advisory text. Class membership decides the status in priority order:
// noDisplay, then free-slots, then blocked-slot, anything else is
// unknown. A noDisplay or blocked-slot class wins over the booking
// action, so those cells never classify as available even when an
// action is present.
func Classify(classes []string, action, advisory string) Classification {
	var c Classification

	if strings.Contains(action, "book") {
		c.IsAvailable = true
		if m := bookActionPattern.FindStringSubmatch(action); m != nil {
			c.BookedRange = &TimeRange{
				From: clockFromStamp(m[2]),
				To:   clockFromStamp(m[3]),
			}
		}
	}

	switch {
	case hasClass(classes, classNoDisplay):
		c.Status = StatusNotOffered
	case hasClass(classes, classFreeSlot):
		if c.IsAvailable {
			c.Status = StatusAvailable
		} else {
			c.Status = StatusUnavailable
		}
	case hasClass(classes, classBlocked):
		c.Status = StatusBlocked
	default:
		c.Status = StatusUnknown
	}

	if reason := strings.TrimSpace(advisory); reason != "" {
		c.Reason = reason
	}

	return c
}

// clockFromStamp extracts HH:MM from the trailing four digits of a
// booking timestamp like "202602090900".
func clockFromStamp(stamp string) string {
	if len(stamp) < 4 {
		return ""
	}
	return stamp[len(stamp)-4:len(stamp)-2] + ":" + stamp[len(stamp)-2:]
}

func hasClass(classes []string, want string) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}
