package coder

import (
	"github.com/mewkiz/arcode/internal/arcerr"
	"github.com/mewkiz/arcode/internal/bitword"
	"github.com/mewkiz/arcode/model"
)

// Encode narrows the interval [Low0, High0] once per byte of data against
// the finalized table, emitting renormalisation bits to sink as it goes,
// and writes the terminating bits at the end. It does not flush sink; the
// caller calls sink.Flush to pad the final word.
//
// The caller is responsible for the empty-input special case: when data is
// empty no bits are emitted at all (see container.Encode).
func Encode(sink *bitword.Sink, params Params, table *model.Table, data []byte) error {
	total := table.Total()
	if total > params.MaxTotal() {
		return arcerr.Newf(arcerr.InputTooLarge, "total %d exceeds the maximum %d addressable at P=%d", total, params.MaxTotal(), params.P)
	}

	s := newState(params)
	for _, b := range data {
		lo, hi, t, err := table.IntervalOf(b)
		if err != nil {
			return err
		}
		s.narrow(lo, hi, t)

	renormLoop:
		for {
			switch {
			case s.e1():
				bit := s.topBit()
				if err := sink.WriteBit(bit); err != nil {
					return arcerr.Wrap(arcerr.Io, err)
				}
				comp := bit ^ 1
				for i := uint64(0); i < s.pending; i++ {
					if err := sink.WriteBit(comp); err != nil {
						return arcerr.Wrap(arcerr.Io, err)
					}
				}
				s.pending = 0
				s.shiftE1()
			case s.e3():
				s.pending++
				s.shiftE3()
			default:
				break renormLoop
			}
		}
	}

	// Termination: emit the high bit of low, then pending+1 copies of its
	// complement.
	bit := s.topBit()
	if err := sink.WriteBit(bit); err != nil {
		return arcerr.Wrap(arcerr.Io, err)
	}
	comp := bit ^ 1
	for i := uint64(0); i < s.pending+1; i++ {
		if err := sink.WriteBit(comp); err != nil {
			return arcerr.Wrap(arcerr.Io, err)
		}
	}
	return nil
}
