// Package model implements the SymbolTable: the byte-frequency map and
// cumulative-frequency index the arithmetic coder narrows intervals
// against.
package model

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/mewkiz/arcode/internal/arcerr"
)

// Entry is a single, immutable (once finalized) symbol record.
type Entry struct {
	Byte  byte
	Count uint64
	Lo    uint64
	Hi    uint64
}

// Table maps byte values to occurrence counts and, once finalized, to
// cumulative-frequency intervals that partition [0, Total).
//
// Finalize sorts the entries by byte value: this is the one ordering policy
// this package implements (see SPEC_FULL.md "Model entry ordering"), and both
// encoder and decoder rely on it to rebuild identical intervals.
type Table struct {
	entries   []Entry
	index     [256]int // index+1 into entries, 0 means "not observed"
	total     uint64
	finalized bool
}

// New returns an empty, observable Table.
func New() *Table {
	return &Table{}
}

// Observe records one occurrence of b. It must not be called after
// finalize.
func (t *Table) Observe(b byte) {
	if i := t.index[b]; i != 0 {
		t.entries[i-1].Count++
		return
	}
	t.entries = append(t.entries, Entry{Byte: b, Count: 1})
	t.index[b] = len(t.entries)
}

// Build observes every byte of data and finalizes the resulting table.
func Build(data []byte) *Table {
	t := New()
	for _, b := range data {
		t.Observe(b)
	}
	t.Finalize()
	return t
}

// Finalize assigns contiguous [lo, hi) windows to every entry, in
// sorted-by-byte order, and computes Total. It is idempotent.
func (t *Table) Finalize() {
	if t.finalized {
		return
	}
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Byte < t.entries[j].Byte
	})
	for i := range t.entries {
		t.index[t.entries[i].Byte] = i + 1
	}
	var cum uint64
	for i := range t.entries {
		t.entries[i].Lo = cum
		cum += t.entries[i].Count
		t.entries[i].Hi = cum
	}
	t.total = cum
	t.finalized = true
}

// Total returns the sum of all observed counts. Only meaningful after
// Finalize.
func (t *Table) Total() uint64 {
	return t.total
}

// Len returns the number of distinct byte values observed.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the finalized entries in sorted-by-byte order. The
// returned slice must not be mutated.
func (t *Table) Entries() []Entry {
	return t.entries
}

// IntervalOf looks up the cumulative-frequency interval of b.
func (t *Table) IntervalOf(b byte) (lo, hi, total uint64, err error) {
	i := t.index[b]
	if i == 0 {
		return 0, 0, 0, arcerr.Newf(arcerr.UnknownSymbol, "symbol %#02x was never observed", b)
	}
	e := t.entries[i-1]
	return e.Lo, e.Hi, t.total, nil
}

// SymbolFor returns the unique byte whose [lo, hi) interval contains value.
func (t *Table) SymbolFor(value uint64) (byte, error) {
	if value >= t.total {
		return 0, arcerr.Newf(arcerr.ValueOutOfRange, "value %d >= total %d", value, t.total)
	}
	// Entries are sorted by byte and partition [0, total) in the same
	// order, so a binary search over Hi locates the owning entry.
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Hi > value
	})
	return t.entries[i].Byte, nil
}

// WriteTo serialises the table as: u64 entry_count, then entry_count
// records of { u8 byte, u64 count }, all little-endian. Cumulative
// intervals are not stored; they are recomputed by Finalize on load.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var n int64
	if err := binary.Write(w, binary.LittleEndian, uint64(len(t.entries))); err != nil {
		return n, arcerr.Wrap(arcerr.Io, err)
	}
	n += 8
	for _, e := range t.entries {
		if err := binary.Write(w, binary.LittleEndian, e.Byte); err != nil {
			return n, arcerr.Wrap(arcerr.Io, err)
		}
		n++
		if err := binary.Write(w, binary.LittleEndian, e.Count); err != nil {
			return n, arcerr.Wrap(arcerr.Io, err)
		}
		n += 8
	}
	return n, nil
}

// ReadFrom deserialises a table written by WriteTo and finalizes it.
func ReadFrom(r io.Reader) (*Table, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, arcerr.Wrap(arcerr.BadContainer, err)
	}
	t := New()
	for i := uint64(0); i < count; i++ {
		var b byte
		var c uint64
		if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
			return nil, arcerr.Wrap(arcerr.BadContainer, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return nil, arcerr.Wrap(arcerr.BadContainer, err)
		}
		if t.index[b] != 0 {
			return nil, arcerr.Newf(arcerr.BadContainer, "duplicate symbol %#02x in serialised table", b)
		}
		t.entries = append(t.entries, Entry{Byte: b, Count: c})
		t.index[b] = len(t.entries)
	}
	t.Finalize()
	return t, nil
}
