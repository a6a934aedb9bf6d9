// Package container composes and parses the self-contained artifact: a
// code-stream region, the serialised SymbolTable, and a trailer naming
// their boundary.
//
// Artifact layout (bit-exact):
//
//	offset 0          : code stream (L bytes, a multiple of 4)
//	offset L          : serialised SymbolTable
//	offset end-9      : u64 L little-endian
//	offset end-1      : u8 trailing_bits in [1..32]
package container

import (
	"encoding/binary"
	"io"

	"github.com/mewkiz/arcode/coder"
	"github.com/mewkiz/arcode/internal/arcerr"
	"github.com/mewkiz/arcode/internal/bitword"
	"github.com/mewkiz/arcode/internal/bufseekio"
	"github.com/mewkiz/arcode/model"
	"github.com/mewkiz/pkg/errutil"
)

// trailerSize is the combined size, in bytes, of the u64 L field and the
// u8 trailing_bits field at the end of the artifact.
const trailerSize = 8 + 1

// Encode builds a complete artifact for data and writes it to w, using the
// coder parameters in params.
func Encode(w io.Writer, data []byte, params coder.Params) error {
	table := model.Build(data)

	var l int64
	var trailingBits byte
	if len(data) > 0 {
		sink := bitword.NewSink(w)
		if err := coder.Encode(sink, params, table, data); err != nil {
			return err
		}
		tb, err := sink.Flush()
		if err != nil {
			return arcerr.Wrap(arcerr.Io, errutil.Err(err))
		}
		trailingBits = tb
		l = sink.Len()
	} else {
		trailingBits = 32
	}

	if _, err := table.WriteTo(w); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(l)); err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	if err := binary.Write(w, binary.LittleEndian, trailingBits); err != nil {
		return arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	return nil
}

// Decode parses the artifact read from r and reconstructs the original
// byte sequence.
func Decode(r io.ReadSeeker, params coder.Params) ([]byte, error) {
	rs := bufseekio.NewReadSeeker(r)

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	if size < trailerSize {
		return nil, arcerr.Newf(arcerr.BadContainer, "file too small (%d bytes) to hold a trailer", size)
	}

	if _, err := rs.Seek(size-trailerSize, io.SeekStart); err != nil {
		return nil, arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	var l uint64
	var trailingBits byte
	if err := binary.Read(rs, binary.LittleEndian, &l); err != nil {
		return nil, arcerr.Wrap(arcerr.BadContainer, errutil.Err(err))
	}
	if err := binary.Read(rs, binary.LittleEndian, &trailingBits); err != nil {
		return nil, arcerr.Wrap(arcerr.BadContainer, errutil.Err(err))
	}
	if trailingBits < 1 || trailingBits > 32 {
		return nil, arcerr.Newf(arcerr.BadContainer, "trailing_bits %d out of range [1,32]", trailingBits)
	}
	if l%4 != 0 {
		return nil, arcerr.Newf(arcerr.BadContainer, "code stream length %d is not a multiple of 4", l)
	}
	if int64(l) > size-trailerSize {
		return nil, arcerr.Newf(arcerr.BadContainer, "code stream length %d exceeds file size", l)
	}

	if _, err := rs.Seek(int64(l), io.SeekStart); err != nil {
		return nil, arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	table, err := model.ReadFrom(rs)
	if err != nil {
		return nil, err
	}

	if table.Total() == 0 {
		return []byte{}, nil
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, arcerr.Wrap(arcerr.Io, errutil.Err(err))
	}
	source := bitword.NewSource(io.LimitReader(rs, int64(l)))

	return coder.Decode(source, params, table)
}
