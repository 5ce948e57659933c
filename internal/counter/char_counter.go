package counter

// utf8State is the incremental UTF-8 decode state carried across chunk
// boundaries: how many continuation bytes the current multi-byte sequence
// still expects (0 when at a character boundary), and a sticky flag set on
// the first invalid byte and never cleared.
type utf8State struct {
	remaining int
	invalid   bool
}

// feed advances the state by one byte and reports whether the byte completed
// a character. Bytes are classified by their leading bits; no codepoints are
// materialized.
func (s *utf8State) feed(b byte) bool {
	switch {
	case b&0x80 == 0:
		// 0xxxxxxx, ASCII. If a multi-byte sequence was pending it is
		// silently discarded rather than flagged, matching GNU wc.
		s.remaining = 0
		return true
	case b&0xC0 == 0x80:
		// 10xxxxxx, continuation byte
		if s.remaining == 0 {
			s.invalid = true // continuation with no lead
			return false
		}
		s.remaining--
		return s.remaining == 0
	case b&0xE0 == 0xC0:
		// 110xxxxx, 2-byte lead; overwrites any unterminated sequence
		s.remaining = 1
	case b&0xF0 == 0xE0:
		// 1110xxxx, 3-byte lead
		s.remaining = 2
	case b&0xF8 == 0xF0:
		// 11110xxx, 4-byte lead
		s.remaining = 3
	default:
		// 11111xxx, never valid in UTF-8
		s.invalid = true
		s.remaining = 0
	}
	return false
}

// CharCounter counts completed UTF-8 characters across chunks, decoding
// incrementally so multi-byte characters split between chunks are counted
// exactly once. Invalid bytes are recorded in a sticky flag and scanning
// continues; they never corrupt the count of characters that do complete.
type CharCounter struct {
	total uint64
	state utf8State
}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() *CharCounter {
	return &CharCounter{}
}

// Feed decodes chunk byte by byte, counting each completed character.
func (cc *CharCounter) Feed(chunk []byte) {
	for _, b := range chunk {
		if cc.state.feed(b) {
			cc.total++
		}
	}
}

// Total returns the number of completed characters counted so far. A
// trailing incomplete sequence is never counted.
func (cc *CharCounter) Total() uint64 {
	return cc.total
}

// Invalid reports whether any invalid byte or sequence was observed, or the
// stream ended in the middle of a multi-byte character. Call after the last
// chunk has been fed.
func (cc *CharCounter) Invalid() bool {
	return cc.state.invalid || cc.state.remaining != 0
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}
