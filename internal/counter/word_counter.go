package counter

// WordCounter counts words delimited by ASCII whitespace. A word begins on
// every transition from whitespace (or start of stream) to a non-whitespace
// byte, so the total is already correct at end-of-stream with no special
// handling for a trailing partial word. The in-word flag is the only state
// carried across chunk boundaries.
type WordCounter struct {
	total  uint64
	inWord bool
}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Feed scans chunk and counts word starts.
func (wc *WordCounter) Feed(chunk []byte) {
	for _, b := range chunk {
		space := isASCIISpace(b)
		if !space && !wc.inWord {
			wc.total++
		}
		wc.inWord = !space
	}
}

// Total returns the number of words counted so far.
func (wc *WordCounter) Total() uint64 {
	return wc.total
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}

// isASCIISpace reports whether b is ASCII whitespace:
// space, tab, newline, vertical tab, form feed, or carriage return.
func isASCIISpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}
