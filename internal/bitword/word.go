// Package bitword packs and unpacks bits into 32-bit little-endian code
// words for the arithmetic coder's bitstream, building on the bit-level
// primitives of github.com/icza/bitio.
//
// bitio itself only ever grows a byte stream MSB-first; wordWriter and
// wordReader sit underneath a bitio.Writer/Reader and byte-reverse every
// group of 4 bytes so the words that hit the wire are little-endian, as
// the container format requires.
package bitword

import "io"

const wordSize = 4

// wordWriter buffers bytes produced by a bitio.Writer and flushes them to
// out in little-endian 32-bit groups.
type wordWriter struct {
	out   io.Writer
	buf   [wordSize]byte
	n     int
	words int64 // full words flushed so far
}

func (w *wordWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		w.buf[w.n] = b
		w.n++
		if w.n == wordSize {
			word := [wordSize]byte{w.buf[3], w.buf[2], w.buf[1], w.buf[0]}
			if _, err := w.out.Write(word[:]); err != nil {
				return 0, err
			}
			w.words++
			w.n = 0
		}
	}
	return len(p), nil
}

// padToWord zero-fills any partial word so a full little-endian word is
// flushed, matching the container's "L is a multiple of 4" invariant.
func (w *wordWriter) padToWord() error {
	for w.n != 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

// bytesWritten returns the number of whole words flushed, in bytes.
func (w *wordWriter) bytesWritten() int64 {
	return w.words * wordSize
}

// wordReader reads 32-bit little-endian words from in and serves their
// bytes MSB-first to a bitio.Reader. Once in is exhausted it serves zero
// bytes indefinitely: the decoder's symbol count bounds how many bits it
// will actually ask for, so this never surfaces as an error.
type wordReader struct {
	in       io.Reader
	buf      [wordSize]byte
	pos      int
	depleted bool
}

// newWordReader returns a wordReader primed to load its first real word on
// the next Read: pos starts at wordSize, not 0, so the reader doesn't serve
// a stale all-zero word before anything has been read from in.
func newWordReader(in io.Reader) *wordReader {
	return &wordReader{in: in, pos: wordSize}
}

func (r *wordReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.pos == wordSize {
			if !r.depleted {
				var raw [wordSize]byte
				if _, err := io.ReadFull(r.in, raw[:]); err != nil {
					r.depleted = true
					r.buf = [wordSize]byte{}
				} else {
					r.buf = [wordSize]byte{raw[3], raw[2], raw[1], raw[0]}
				}
			} else {
				r.buf = [wordSize]byte{}
			}
			r.pos = 0
		}
		p[n] = r.buf[r.pos]
		r.pos++
		n++
	}
	return n, nil
}
