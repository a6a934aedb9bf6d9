package bitword

import (
	"bytes"
	"testing"
)

func TestSinkWordAlignment(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	for i := 0; i < 5; i++ {
		if err := sink.WriteBit(1); err != nil {
			t.Fatal(err)
		}
	}
	trailing, err := sink.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if trailing != 5 {
		t.Fatalf("trailing bits = %d, want 5", trailing)
	}
	if buf.Len()%4 != 0 {
		t.Fatalf("output length %d is not word-aligned", buf.Len())
	}
	if sink.Len() != int64(buf.Len()) {
		t.Fatalf("sink.Len() = %d, want %d", sink.Len(), buf.Len())
	}
}

func TestSinkFullWordTrailingBits(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	for i := 0; i < 32; i++ {
		if err := sink.WriteBit(uint64(i % 2)); err != nil {
			t.Fatal(err)
		}
	}
	trailing, err := sink.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if trailing != 32 {
		t.Fatalf("trailing bits = %d, want 32", trailing)
	}
	if buf.Len() != 4 {
		t.Fatalf("output length = %d, want 4", buf.Len())
	}
}

func TestSinkEmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	trailing, err := sink.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if trailing != 0 || buf.Len() != 0 {
		t.Fatalf("expected no output for an unwritten sink, got trailing=%d len=%d", trailing, buf.Len())
	}
}

func TestSourceRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	bits := []uint64{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1}
	for _, b := range bits {
		if err := sink.WriteBit(b); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := sink.Flush(); err != nil {
		t.Fatal(err)
	}

	source := NewSource(bytes.NewReader(buf.Bytes()))
	for i, want := range bits {
		if got := source.ReadBit(); got != want {
			t.Fatalf("bit %d = %d, want %d", i, got, want)
		}
	}
}

func TestSourceServesZeroBitsPastEnd(t *testing.T) {
	source := NewSource(bytes.NewReader(nil))
	for i := 0; i < 64; i++ {
		if got := source.ReadBit(); got != 0 {
			t.Fatalf("bit %d past end of stream = %d, want 0", i, got)
		}
	}
}

func TestWordLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	// 0x00000001 built MSB-first: 31 zero bits then a one bit.
	for i := 0; i < 31; i++ {
		if err := sink.WriteBit(0); err != nil {
			t.Fatal(err)
		}
	}
	if err := sink.WriteBit(1); err != nil {
		t.Fatal(err)
	}
	if _, err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("word bytes = % X, want % X", buf.Bytes(), want)
	}
}
