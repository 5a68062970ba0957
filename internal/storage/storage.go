package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhofbauer/venue-calendar/internal/calendar"
)

// DefaultWeekFile is the file name used when none is given.
const DefaultWeekFile = "venue_calendar.json"

// Storage handles persistence of aggregated week results.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, expanding a leading ~ and
// creating the directory if needed.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// Path returns the absolute location of a week file.
func (s *Storage) Path(filename string) string {
	if filename == "" {
		filename = DefaultWeekFile
	}
	return filepath.Join(s.dataDir, filename)
}

// SaveWeek writes an assembled week as indented JSON.
func (s *Storage) SaveWeek(week *calendar.Week, filename string) error {
	data, err := json.MarshalIndent(week, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding week: %w", err)
	}

	if err := os.WriteFile(s.Path(filename), data, 0644); err != nil {
		return fmt.Errorf("writing week: %w", err)
	}

	return nil
}

// LoadWeek reads a previously saved week.
func (s *Storage) LoadWeek(filename string) (*calendar.Week, error) {
	data, err := os.ReadFile(s.Path(filename))
	if err != nil {
		return nil, fmt.Errorf("reading week: %w", err)
	}

	var week calendar.Week
	if err := json.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("parsing week: %w", err)
	}

	return &week, nil
}
