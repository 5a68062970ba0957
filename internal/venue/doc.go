// Package venue holds the per-venue and per-day result types produced by
// parsing availability fragments. The JSON field names are the wire contract
// consumed by the calendar viewer and must not change.
package venue
