package bitword

import (
	"io"

	"github.com/icza/bitio"
)

// Sink accepts bits one at a time and packs them into 32-bit little-endian
// words written to the underlying stream.
type Sink struct {
	ww   *wordWriter
	bw   bitio.Writer
	nbit int64
}

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	ww := &wordWriter{out: w}
	return &Sink{ww: ww, bw: bitio.NewWriter(ww)}
}

// WriteBit pushes a single bit (0 or 1) into the sink.
func (s *Sink) WriteBit(bit uint64) error {
	if err := s.bw.WriteBits(bit, 1); err != nil {
		return err
	}
	s.nbit++
	return nil
}

// Flush completes any partially filled word, zero-padding it, and returns
// the number of meaningful high-order bits in that final word (1..32). If
// no bits were ever written, it returns 0 and writes nothing.
func (s *Sink) Flush() (trailingBits byte, err error) {
	if s.nbit == 0 {
		return 0, nil
	}
	if err := s.bw.Close(); err != nil {
		return 0, err
	}
	if err := s.ww.padToWord(); err != nil {
		return 0, err
	}
	rem := s.nbit % 32
	if rem == 0 {
		return 32, nil
	}
	return byte(rem), nil
}

// Len returns the number of whole 32-bit words flushed so far, in bytes.
func (s *Sink) Len() int64 {
	return s.ww.bytesWritten()
}
