// Package storage persists assembled calendar weeks as indented JSON files
// under a data directory.
package storage
