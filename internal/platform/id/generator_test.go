package id

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestObjectIDGenerator_NewID(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 18, 16, 0, 0, 0, time.UTC))
	gen, err := NewObjectIDGenerator(clock)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if !Valid(first) || !Valid(second) {
		t.Fatalf("expected valid ids, got %q and %q", first, second)
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
	// 2025-09-18T16:00:00Z is 0x68cc2c80 seconds.
	if first[:8] != "68cc2c80" {
		t.Fatalf("unexpected timestamp prefix: %s", first[:8])
	}
	if first[8:18] != second[8:18] {
		t.Fatalf("expected shared process bytes, got %s vs %s", first[8:18], second[8:18])
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "lower hex", raw: "64f1a2b3c4d5e6f708192a3b", want: true},
		{name: "upper hex", raw: "64F1A2B3C4D5E6F708192A3B", want: true},
		{name: "too short", raw: "64f1a2b3", want: false},
		{name: "too long", raw: "64f1a2b3c4d5e6f708192a3b00", want: false},
		{name: "non hex", raw: "not-an-id-not-an-id-xxxx", want: false},
		{name: "empty", raw: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Valid(tc.raw); got != tc.want {
				t.Fatalf("Valid(%q)=%v want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParse_NormalizesCase(t *testing.T) {
	got, ok := Parse("  64F1A2B3C4D5E6F708192A3B ")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if got != "64f1a2b3c4d5e6f708192a3b" {
		t.Fatalf("unexpected canonical id: %s", got)
	}

	if _, ok := Parse("not-an-id"); ok {
		t.Fatalf("expected parse to fail for malformed id")
	}
}
