// Package scan implements the single-pass read-and-dispatch loop that
// drives the counters over an input stream.
package scan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/tally/internal/counter"
)

// ChunkSize is the fixed read size. Memory stays bounded by the chunk
// buffer regardless of input size.
const ChunkSize = 16 * 1024

// Scanner pulls fixed-size chunks from a source and feeds each non-empty
// chunk to every enabled counter, in the same order every time. Counters
// only read the chunk; the buffer is reused between reads.
type Scanner struct {
	r        io.Reader
	counters []counter.Counter
	buf      []byte
}

// New creates a Scanner over r that dispatches to the given counters.
func New(r io.Reader, counters []counter.Counter) *Scanner {
	return &Scanner{
		r:        r,
		counters: counters,
		buf:      make([]byte, ChunkSize),
	}
}

// Run consumes the source until end-of-stream, signaled by io.EOF or a
// zero-length read. A read error is fatal: the scan aborts and the caller
// must discard any partially accumulated counts; there is no partial-result
// mode.
func (s *Scanner) Run() error {
	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			chunk := s.buf[:n]
			for _, c := range s.counters {
				c.Feed(chunk)
			}
			slog.Debug("Chunk dispatched", "bytes", n, "counters", len(s.counters))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read failed: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}
