// Package counter provides streaming text counters for the tally CLI tool.
//
// Each counter consumes successive chunks of raw bytes through the Counter
// interface and maintains a running total across chunks. Counters that need
// state across chunk boundaries (the word counter's in-word flag, the
// character counter's UTF-8 decode state) carry it internally, so a stream
// split into chunks at arbitrary byte offsets yields the same totals as the
// stream fed whole.
//
// Usage Example:
//
//	lc := counter.NewLineCounter()
//	lc.Feed([]byte("a\nb\n"))
//	lc.Feed([]byte("c\n"))
//	// lc.Total() == 3
//
// The package supports multiple counting methods through the Counter
// interface; the New factory maps a Kind to a counter instance.
package counter

import "fmt"

// Counter defines the interface for streaming text counting strategies.
type Counter interface {
	// Feed consumes the next chunk of the stream. Chunks must be delivered
	// in stream order; the counter only reads the chunk and keeps no
	// reference to it after Feed returns.
	Feed(chunk []byte)

	// Total returns the number of units counted so far.
	Total() uint64

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Kind represents the different available counting strategies.
type Kind int

const (
	// Lines counts newline bytes (POSIX line terminators)
	Lines Kind = iota
	// Words counts ASCII-whitespace-delimited words
	Words
	// Chars counts completed UTF-8 characters
	Chars
	// Bytes counts raw bytes
	Bytes
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
)

// String returns the string representation of the counting kind.
func (k Kind) String() string {
	switch k {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "characters"
	case Bytes:
		return "bytes"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// New creates a new Counter instance for the given kind.
// This functions as a factory; it returns concrete Counter types,
// providing a single, simple entry point to get a counter instance.
// Returns an error if the counter cannot be initialized (e.g., tiktoken
// encoding fails). The byte counter returned here always sums chunk
// lengths; callers that know the stream length up front should use
// NewByteCounterFromSize instead.
func New(kind Kind) (Counter, error) {
	switch kind {
	case Lines:
		return NewLineCounter(), nil
	case Words:
		return NewWordCounter(), nil
	case Chars:
		return NewCharCounter(), nil
	case Bytes:
		return NewByteCounter(), nil
	case Tokens:
		return NewTokenCounter()
	default:
		return nil, fmt.Errorf("unknown counter kind %d", int(kind))
	}
}

var (
	_ Counter = (*LineCounter)(nil)
	_ Counter = (*WordCounter)(nil)
	_ Counter = (*CharCounter)(nil)
	_ Counter = (*ByteCounter)(nil)
	_ Counter = (*TokenCounter)(nil)
)
