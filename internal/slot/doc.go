// Package slot decodes booking-grid cells into typed time slots.
//
// The booking system renders each venue's day as a table row of cells on a
// 5-minute grid, twelve cells per display hour. A cell's position and colspan
// encode its time range visually; bookable cells additionally carry an inline
// booking action with explicit timestamps that override the visual geometry.
// This package turns both encodings, plus the cell's style classes, into a
// TimeSlot with a status tag and availability flag.
package slot
