// Package cli implements the venue-calendar command line interface: the
// default aggregation run and the serve subcommand for the local viewer.
package cli
