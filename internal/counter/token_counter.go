package counter

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts tokens using tiktoken w/ cl100k_base encoding.
//
// Tokenization needs the whole text, so unlike the other counters this one
// buffers the stream and encodes when Total is read. Memory use is
// proportional to input size, which is why token counting is opt-in and
// never part of the default counter set.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	buf      bytes.Buffer
}

// NewTokenCounter creates a new TokenCounter w/ cl100k_base encoding
func NewTokenCounter() (*TokenCounter, error) {
	slog.Debug("Initializing TokenCounter with cl100k_base encoding")

	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}

	return &TokenCounter{encoding: encoding}, nil
}

// Feed appends chunk to the internal buffer.
func (tc *TokenCounter) Feed(chunk []byte) {
	tc.buf.Write(chunk)
}

// Total encodes the buffered text and returns the number of tokens.
func (tc *TokenCounter) Total() uint64 {
	if tc.buf.Len() == 0 {
		return 0
	}

	// encode text to tokens (nil params mean no special tokens allowed/disallowed)
	tokens := tc.encoding.Encode(tc.buf.String(), nil, nil)

	slog.Debug("Token count calculated", "textLength", tc.buf.Len(), "tokenCount", len(tokens))
	return uint64(len(tokens))
}

// Name returns the name of this counting method (for logging and debugging).
func (tc *TokenCounter) Name() string {
	return "tokens (cl100k_base)"
}
