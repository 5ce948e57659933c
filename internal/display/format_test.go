package display

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct {
		name      string
		sizes     []int64
		numCounts int
		expected  int
	}{
		{"single count single source", []int64{123456}, 1, 0},
		{"single count no sizes", nil, 1, 0},
		{"multiple counts known size", []int64{950}, 3, 3},
		{"width covers largest source", []int64{5, 10500}, 3, 5},
		{"unknown size falls back", []int64{-1}, 3, DefaultWidth},
		{"any unknown size falls back", []int64{100, -1}, 3, DefaultWidth},
		{"empty file still gets one digit", []int64{0}, 3, 1},
		{"single count multiple sources aligns", []int64{7, 900}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.sizes, tt.numCounts); got != tt.expected {
				t.Errorf("Width(%v, %d) = %d, want %d", tt.sizes, tt.numCounts, got, tt.expected)
			}
		})
	}
}

func TestFormatRow(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		width    int
		expected string
	}{
		{"no padding", Row{Counts: []uint64{12}}, 0, "12"},
		{"padded counts with label", Row{Counts: []uint64{1, 2, 12}, Label: "input.txt"}, 4, "   1    2   12 input.txt"},
		{"padded counts without label", Row{Counts: []uint64{1, 2, 12}}, 4, "   1    2   12"},
		{"total row", Row{Counts: []uint64{10, 20}, Label: "total"}, 3, " 10  20 total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRow(tt.row, tt.width); got != tt.expected {
				t.Errorf("FormatRow(%v, %d) = %q, want %q", tt.row, tt.width, got, tt.expected)
			}
		})
	}
}
