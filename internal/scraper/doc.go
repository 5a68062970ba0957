// Package scraper fetches and parses per-day availability fragments from the
// Venuzle booking platform.
//
// One AJAX request per date returns a server-rendered table covering every
// venue in a cluster: each row is a venue, the first cell carries the venue
// link, and the remaining cells encode time slots on a 5-minute grid. The
// parser turns each fragment into a venue.DayResult; fetch failures are
// folded into the result rather than returned, so a multi-day run is always
// best effort across the whole range.
package scraper
