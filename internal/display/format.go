// Package display formats final counts into wc-style output rows.
package display

import (
	"fmt"
	"strings"
)

// DefaultWidth is the column width used when no size metadata is available
// for any source (standard input, URLs).
const DefaultWidth = 7

// Row is one line of output: counts in display order, plus an optional
// trailing label (the source name, or "total").
type Row struct {
	Counts []uint64
	Label  string
}

// Width returns the column width for a run. A single count for a single
// source needs no alignment and gets width 0. Otherwise the width is the
// digit count of the largest known source size, or DefaultWidth when any
// source size is unknown (negative).
func Width(sizes []int64, numCounts int) int {
	if numCounts == 1 && len(sizes) <= 1 {
		return 0
	}

	var max int64
	for _, size := range sizes {
		if size < 0 {
			return DefaultWidth
		}
		if size > max {
			max = size
		}
	}
	return digits(max)
}

// FormatRow renders one row with each count right-aligned to width.
func FormatRow(row Row, width int) string {
	var b strings.Builder
	for _, c := range row.Counts {
		fmt.Fprintf(&b, "%*d ", width, c)
	}
	b.WriteString(row.Label)
	return strings.TrimRight(b.String(), " ")
}

// digits returns the number of decimal digits in n; at least 1.
func digits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
