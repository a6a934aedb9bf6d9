package model

import (
	"bytes"
	"testing"
)

func TestObserveAndFinalize(t *testing.T) {
	tbl := Build([]byte("ABABABAB"))
	if got, want := tbl.Total(), uint64(8); got != want {
		t.Fatalf("total = %d, want %d", got, want)
	}
	if got, want := tbl.Len(), 2; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}

	// sorted-by-byte order: 'A' (0x41) before 'B' (0x42).
	entries := tbl.Entries()
	if entries[0].Byte != 'A' || entries[1].Byte != 'B' {
		t.Fatalf("entries not sorted by byte: %+v", entries)
	}

	loA, hiA, total, err := tbl.IntervalOf('A')
	if err != nil {
		t.Fatal(err)
	}
	if loA != 0 || hiA != 4 || total != 8 {
		t.Fatalf("interval of 'A' = [%d,%d) total=%d, want [0,4) total=8", loA, hiA, total)
	}
	loB, hiB, _, err := tbl.IntervalOf('B')
	if err != nil {
		t.Fatal(err)
	}
	if loB != 4 || hiB != 8 {
		t.Fatalf("interval of 'B' = [%d,%d), want [4,8)", loB, hiB)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	tbl := Build([]byte("AAAA"))
	before := tbl.Total()
	tbl.Finalize()
	tbl.Finalize()
	if tbl.Total() != before {
		t.Fatalf("total changed across repeated Finalize calls: %d -> %d", before, tbl.Total())
	}
}

func TestIntervalsPartitionRange(t *testing.T) {
	tbl := Build([]byte("the quick brown fox jumps over the lazy dog"))
	var cum uint64
	for _, e := range tbl.Entries() {
		if e.Lo != cum {
			t.Fatalf("gap or overlap before byte %q: want lo=%d got lo=%d", e.Byte, cum, e.Lo)
		}
		cum = e.Hi
	}
	if cum != tbl.Total() {
		t.Fatalf("intervals do not cover [0, total): last hi=%d total=%d", cum, tbl.Total())
	}
}

func TestIntervalOfUnknownSymbol(t *testing.T) {
	tbl := Build([]byte("AAAA"))
	if _, _, _, err := tbl.IntervalOf('Z'); err == nil {
		t.Fatal("expected an error for an unobserved symbol")
	}
}

func TestSymbolForValueOutOfRange(t *testing.T) {
	tbl := Build([]byte("AAAA"))
	if _, err := tbl.SymbolFor(tbl.Total()); err == nil {
		t.Fatal("expected an error for value >= total")
	}
}

func TestSymbolForRoundTrip(t *testing.T) {
	tbl := Build([]byte("ABABABAB"))
	for v := uint64(0); v < tbl.Total(); v++ {
		b, err := tbl.SymbolFor(v)
		if err != nil {
			t.Fatalf("SymbolFor(%d): %v", v, err)
		}
		lo, hi, _, err := tbl.IntervalOf(b)
		if err != nil {
			t.Fatal(err)
		}
		if v < lo || v >= hi {
			t.Fatalf("SymbolFor(%d) = %q whose interval [%d,%d) does not contain %d", v, b, lo, hi, v)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tbl := Build([]byte("mississippi"))
	var buf bytes.Buffer
	if _, err := tbl.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Total() != tbl.Total() || got.Len() != tbl.Len() {
		t.Fatalf("round-tripped table mismatch: total %d vs %d, len %d vs %d", got.Total(), tbl.Total(), got.Len(), tbl.Len())
	}
	for i, e := range tbl.Entries() {
		g := got.Entries()[i]
		if g != e {
			t.Fatalf("entry %d mismatch: got %+v, want %+v", i, g, e)
		}
	}
}
