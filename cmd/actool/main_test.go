package main

import "testing"

func TestParseParamsDefaults(t *testing.T) {
	p, err := parseParams("", "")
	if err != nil {
		t.Fatal(err)
	}
	if p.P != 32 {
		t.Fatalf("default precision = %d, want 32", p.P)
	}
}

func TestParseParamsOverride(t *testing.T) {
	p, err := parseParams("0", "65535")
	if err != nil {
		t.Fatal(err)
	}
	if p.P != 16 {
		t.Fatalf("precision = %d, want 16", p.P)
	}
}

func TestParseParamsRejectsBadValue(t *testing.T) {
	if _, err := parseParams("0", "100"); err == nil {
		t.Fatal("expected an error for a non-2^k-1 high value")
	}
}

func TestParseParamsRejectsNonNumeric(t *testing.T) {
	if _, err := parseParams("", "not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric high value")
	}
}
