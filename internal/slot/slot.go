package slot

// Status classifies one booking-grid cell.
type Status string

const (
	// StatusAvailable marks a cell that is shown and bookable.
	StatusAvailable Status = "available"
	// StatusUnavailable marks a cell that is shown but not bookable.
	StatusUnavailable Status = "unavailable"
	// StatusBlocked marks a cell that is already booked or blocked.
	StatusBlocked Status = "blocked"
	// StatusNotOffered marks a cell where the venue is not offered at all.
	StatusNotOffered Status = "not_offered"
	// StatusUnknown marks a cell whose classes match no known pattern.
	StatusUnknown Status = "unknown"
)

// TimeSlot is one offering in a venue's day row.
type TimeSlot struct {
	Time        string `json:"time"`
	TimeFrom    string `json:"time_from"`
	TimeTo      string `json:"time_to"`
	Price       string `json:"price,omitempty"`
	Status      Status `json:"status"`
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason,omitempty"`
}
