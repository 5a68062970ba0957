package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mhofbauer/venue-calendar/internal/logger"
	"github.com/mhofbauer/venue-calendar/internal/venue"
)

const (
	// DefaultBaseURL is the venue listing root of the booking platform.
	DefaultBaseURL = "https://book.venuzle.at/stadt-linz/venues"
	// DefaultClusterID is the venue cluster covering all venues.
	DefaultClusterID = 6
	// DefaultUserAgent mimics a desktop browser; the AJAX endpoint
	// serves empty fragments to unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// DefaultFetchDelay spaces consecutive day requests.
	DefaultFetchDelay = 500 * time.Millisecond
	// Timeout bounds a single fragment request.
	Timeout = 10 * time.Second

	// DateFormat is the 8-digit date layout the platform uses in URLs.
	DateFormat = "20060102"
)

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Scraper fetches per-day availability fragments for one venue cluster.
// Its lifecycle is scoped to a single aggregation run.
type Scraper struct {
	client    HTTPClient
	baseURL   string
	clusterID int
	userAgent string
	delay     time.Duration
	sleep     func(time.Duration)
}

// Option applies Scraper options.
type Option func(*Scraper)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *Scraper) { s.client = client }
}

// WithBaseURL replaces the default booking platform root.
func WithBaseURL(baseURL string) Option {
	return func(s *Scraper) { s.baseURL = baseURL }
}

// WithClusterID selects the venue cluster to fetch.
func WithClusterID(id int) Option {
	return func(s *Scraper) { s.clusterID = id }
}

// WithUserAgent replaces the identity header sent upstream.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) { s.userAgent = ua }
}

// WithFetchDelay sets the pause between consecutive day requests.
// Negative values disable the pause.
func WithFetchDelay(delay time.Duration) Option {
	return func(s *Scraper) {
		if delay < 0 {
			delay = 0
		}
		s.delay = delay
	}
}

// New creates a Scraper for one aggregation run.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:    &http.Client{Timeout: Timeout},
		baseURL:   DefaultBaseURL,
		clusterID: DefaultClusterID,
		userAgent: DefaultUserAgent,
		delay:     DefaultFetchDelay,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DayURL returns the AJAX fragment URL for one date.
func (s *Scraper) DayURL(date string) string {
	return fmt.Sprintf("%s/c/%d/%s/ajax/", s.baseURL, s.clusterID, date)
}

// FetchDay fetches and parses the availability fragment for one date.
// Transport and parse failures are folded into the result's Error field
// so a bad date never aborts a multi-day run.
func (s *Scraper) FetchDay(date string) *venue.DayResult {
	url := s.DayURL(date)
	start := time.Now()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return s.failDay(date, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return s.failDay(date, fmt.Errorf("fetching fragment: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.failDay(date, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	result, err := ParseDay(resp.Body, date)
	if err != nil {
		return s.failDay(date, err)
	}

	result.URL = url
	result.FetchedAt = time.Now().UTC().Format(time.RFC3339)

	logger.RecordTiming("scraper.fetch_day", time.Since(start))
	logger.IncrCounter("scraper.days_fetched")
	logger.Debug("Fetched day", logger.Fields{
		"date":              date,
		"total_venues":      result.TotalVenues,
		"venues_with_slots": result.VenuesWithSlots,
	})

	return result
}

func (s *Scraper) failDay(date string, err error) *venue.DayResult {
	logger.IncrCounter("scraper.days_failed")
	logger.Error("Fetching day failed", logger.Fields{"date": date}, err)
	return venue.FailedDay(date, err)
}

// FetchRange fetches `days` consecutive dates starting at startDate
// (8-digit form), pausing between requests. Days are fetched and parsed
// strictly in sequence; each date's result, failed or not, keeps its
// position in the returned slice. The only error condition is an
// unparseable start date.
func (s *Scraper) FetchRange(startDate string, days int) ([]*venue.DayResult, error) {
	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", startDate, err)
	}
	if days < 1 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}

	results := make([]*venue.DayResult, 0, days)
	for offset := 0; offset < days; offset++ {
		if offset > 0 && s.delay > 0 {
			s.sleep(s.delay)
		}
		date := start.AddDate(0, 0, offset).Format(DateFormat)
		results = append(results, s.FetchDay(date))
	}

	return results, nil
}
