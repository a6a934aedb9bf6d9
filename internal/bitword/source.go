package bitword

import (
	"io"

	"github.com/icza/bitio"
)

// Source delivers bits most-significant-first from 32-bit little-endian
// words read from the underlying stream.
type Source struct {
	wr *wordReader
	br bitio.Reader
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader) *Source {
	wr := newWordReader(r)
	return &Source{wr: wr, br: bitio.NewReader(wr)}
}

// ReadBit returns the next bit (0 or 1). Past the end of the valid bit
// supply this serves zero bits indefinitely rather than an error; it is the
// decoder's responsibility to stop asking once it has emitted its known
// symbol count.
func (s *Source) ReadBit() uint64 {
	bit, _ := s.br.ReadBits(1)
	return bit
}
