// Package coder implements the arithmetic coding engine: the encoder and
// decoder state machines that narrow the (low, high) interval per symbol
// and renormalise it with the E1/E3 rescaling rules.
package coder

import (
	"math/bits"

	"github.com/mewkiz/arcode/internal/arcerr"
)

// Params holds the coder's register width and derived masks, plus the
// initial (low, high) pair the encoder/decoder start from.
type Params struct {
	P uint // precision, in bits

	Low0, High0 uint64 // initial register values

	FullBit  uint64
	FullMask uint64
	HalfBit  uint64
	HalfMask uint64
}

// DefaultHigh is the default initial high register: 2^32 - 1.
const DefaultHigh = uint64(1)<<32 - 1

// DefaultParams returns the 32-bit precision parameters used when the CLI
// is given no -l/-h override.
func DefaultParams() Params {
	p, err := NewParams(0, DefaultHigh)
	if err != nil {
		panic(err) // unreachable: DefaultHigh is well formed
	}
	return p
}

// NewParams derives coder parameters from an initial (low0, high0) pair.
// Both must be of the form 2^k-1 (clean low-order-bits-set values), as
// required so that FullMask equals high0 exactly; high0 additionally fixes
// the precision P. P must land in [4, 32] or BadPrecision is raised.
func NewParams(low0, high0 uint64) (Params, error) {
	if !isPow2Minus1(high0) {
		return Params{}, arcerr.Newf(arcerr.BadPrecision, "high %d is not of the form 2^k-1", high0)
	}
	if !isPow2Minus1(low0) {
		return Params{}, arcerr.Newf(arcerr.BadPrecision, "low %d is not of the form 2^k-1", low0)
	}
	if low0 >= high0 {
		return Params{}, arcerr.Newf(arcerr.BadPrecision, "low %d must be less than high %d", low0, high0)
	}
	p := bits.Len64(high0 + 1) - 1
	if p < 4 || p > 32 {
		return Params{}, arcerr.Newf(arcerr.BadPrecision, "precision %d out of range [4, 32]", p)
	}
	return Params{
		P:        uint(p),
		Low0:     low0,
		High0:    high0,
		FullBit:  uint64(1) << (p - 1),
		FullMask: high0,
		HalfBit:  uint64(1) << (p - 2),
		HalfMask: uint64(1)<<(p-1) - 1,
	}, nil
}

// isPow2Minus1 reports whether v+1 is a power of two (including v==0).
func isPow2Minus1(v uint64) bool {
	n := v + 1
	return n != 0 && n&(n-1) == 0
}

// MaxTotal returns the largest symbol-count total this precision can
// address: total must satisfy total+1 <= 2^(P-2).
func (p Params) MaxTotal() uint64 {
	return uint64(1)<<(p.P-2) - 1
}
