package counter

import "bytes"

// LineCounter counts newline bytes (0x0A) across chunks. This follows the
// POSIX semantic of counting line terminators, so a final line without a
// trailing newline does not add to the total.
type LineCounter struct {
	total uint64
}

// NewLineCounter creates a new LineCounter instance.
func NewLineCounter() *LineCounter {
	return &LineCounter{}
}

// Feed adds the number of newline bytes in chunk to the running total.
func (lc *LineCounter) Feed(chunk []byte) {
	lc.total += uint64(bytes.Count(chunk, []byte{'\n'}))
}

// Total returns the number of newlines counted so far.
func (lc *LineCounter) Total() uint64 {
	return lc.total
}

// Name returns the name of this counting method for logging and debugging.
func (lc *LineCounter) Name() string {
	return "lines"
}
