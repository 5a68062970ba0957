// Package calendar assembles per-day scrape results into a day × time grid
// suitable for JSON persistence and calendar rendering, and exports bookable
// offerings as iCalendar events.
package calendar
