package coder

import (
	"github.com/mewkiz/arcode/internal/arcerr"
	"github.com/mewkiz/arcode/internal/bitword"
	"github.com/mewkiz/arcode/model"
)

// Decode reads bits from source and reconstructs exactly table.Total()
// bytes, the count being known up front from the loaded SymbolTable rather
// than a stream marker.
func Decode(source *bitword.Source, params Params, table *model.Table) ([]byte, error) {
	total := table.Total()
	if total == 0 {
		return nil, nil
	}

	s := newState(params)

	var code uint64
	for i := uint(0); i < params.P; i++ {
		code = (code << 1) | source.ReadBit()
	}

	out := make([]byte, 0, total)
	for uint64(len(out)) < total {
		if !(s.low <= code && code <= s.high) {
			return nil, arcerr.Newf(arcerr.Corrupt, "coder invariant violated: low=%d code=%d high=%d", s.low, code, s.high)
		}

		r := s.high - s.low + 1
		v := ((code-s.low+1)*total - 1) / r

		b, err := table.SymbolFor(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)

		lo, hi, t, err := table.IntervalOf(b)
		if err != nil {
			return nil, err
		}
		s.narrow(lo, hi, t)

	renormLoop:
		for {
			switch {
			case s.e1():
				s.shiftE1()
				code = ((code << 1) & params.FullMask) | source.ReadBit()
			case s.e3():
				s.shiftE3()
				code = (code & params.FullBit) | ((code << 1) & params.HalfMask) | source.ReadBit()
			default:
				break renormLoop
			}
		}
	}
	return out, nil
}
