package scan

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/chriscorrea/tally/internal/counter"
)

func TestScannerDispatchesToAllCounters(t *testing.T) {
	lc := counter.NewLineCounter()
	wc := counter.NewWordCounter()
	bc := counter.NewByteCounter()

	s := New(strings.NewReader("hello world\n"), []counter.Counter{lc, wc, bc})
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if lc.Total() != 1 {
		t.Errorf("line total = %d, want 1", lc.Total())
	}
	if wc.Total() != 2 {
		t.Errorf("word total = %d, want 2", wc.Total())
	}
	if bc.Total() != 12 {
		t.Errorf("byte total = %d, want 12", bc.Total())
	}
}

func TestScannerSmallReads(t *testing.T) {
	// one byte per Read; totals must match a single-chunk scan, and the
	// char counter must survive multi-byte sequences split across reads
	input := "héllo wörld\n日本語\n"

	cc := counter.NewCharCounter()
	wc := counter.NewWordCounter()
	s := New(iotest.OneByteReader(strings.NewReader(input)), []counter.Counter{cc, wc})
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	wantChars := uint64(len([]rune(input)))
	if cc.Total() != wantChars {
		t.Errorf("char total = %d, want %d", cc.Total(), wantChars)
	}
	if cc.Invalid() {
		t.Error("char counter flagged valid input as invalid")
	}
	if wc.Total() != 3 {
		t.Errorf("word total = %d, want 3", wc.Total())
	}
}

func TestScannerEmptyStream(t *testing.T) {
	bc := counter.NewByteCounter()
	s := New(strings.NewReader(""), []counter.Counter{bc})
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if bc.Total() != 0 {
		t.Errorf("byte total = %d, want 0", bc.Total())
	}
}

func TestScannerReadErrorIsFatal(t *testing.T) {
	readErr := errors.New("device yanked")

	bc := counter.NewByteCounter()
	s := New(errReader{data: []byte("partial"), err: readErr}, []counter.Counter{bc})

	err := s.Run()
	if err == nil {
		t.Fatal("Run should propagate the read error")
	}
	if !errors.Is(err, readErr) {
		t.Errorf("Run error = %v, want wrapped %v", err, readErr)
	}
}

// errReader yields its data and fails on the same read.
type errReader struct {
	data []byte
	err  error
}

func (r errReader) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	return n, r.err
}
