package slot

import "testing"

func TestDecodeGeometry(t *testing.T) {
	tests := []struct {
		name      string
		cellIndex int
		colspan   int
		startHour int
		from      string
		to        string
	}{
		{"first display hour", 0, 12, 7, "07:00", "08:00"},
		{"second display hour", 12, 12, 7, "08:00", "09:00"},
		{"two hour span", 24, 24, 7, "09:00", "11:00"},
		{"mid hour offset", 6, 12, 7, "07:30", "08:30"},
		{"single unit", 13, 1, 7, "08:05", "08:10"},
		{"rollover within span", 11, 2, 7, "07:55", "08:05"},
		{"late grid hour", 168, 12, 7, "21:00", "22:00"},
		{"different start hour", 0, 12, 9, "09:00", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := DecodeGeometry(tt.cellIndex, tt.colspan, tt.startHour)
			if rng.From != tt.from || rng.To != tt.to {
				t.Errorf("DecodeGeometry(%d, %d, %d) = %s-%s, expected %s-%s",
					tt.cellIndex, tt.colspan, tt.startHour, rng.From, rng.To, tt.from, tt.to)
			}
		})
	}
}

func TestTimeRangeString(t *testing.T) {
	rng := TimeRange{From: "09:00", To: "10:00"}
	if got := rng.String(); got != "09:00-10:00" {
		t.Errorf("String() = %q, expected %q", got, "09:00-10:00")
	}
}
