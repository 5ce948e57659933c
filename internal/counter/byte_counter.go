package counter

// ByteCounter counts raw bytes. It runs in one of two modes, fixed at
// construction: when the total stream length is known up front (a regular
// file's size from metadata) the counter holds that value and ignores chunk
// lengths entirely; otherwise it sums chunk lengths as they arrive. When
// metadata and the bytes actually read disagree (file modified mid-run),
// metadata wins.
type ByteCounter struct {
	total    uint64
	fromSize bool
}

// NewByteCounter creates a ByteCounter that sums chunk lengths.
func NewByteCounter() *ByteCounter {
	return &ByteCounter{}
}

// NewByteCounterFromSize creates a ByteCounter fixed to a known stream length.
func NewByteCounterFromSize(size int64) *ByteCounter {
	return &ByteCounter{total: uint64(size), fromSize: true}
}

// Feed adds the chunk length to the total unless the length was known up front.
func (bc *ByteCounter) Feed(chunk []byte) {
	if !bc.fromSize {
		bc.total += uint64(len(chunk))
	}
}

// Total returns the byte count.
func (bc *ByteCounter) Total() uint64 {
	return bc.total
}

// Name returns the name of this counting method for logging and debugging.
func (bc *ByteCounter) Name() string {
	return "bytes"
}
