package season

import (
	"testing"
	"time"
)

func TestFromMonth(t *testing.T) {
	tests := []struct {
		month  time.Month
		want   Season
		wantOK bool
	}{
		{month: time.January, want: Winter, wantOK: true},
		{month: time.February, want: Winter, wantOK: true},
		{month: time.March, want: Winter, wantOK: true},
		{month: time.April, want: Spring, wantOK: true},
		{month: time.May, want: Spring, wantOK: true},
		{month: time.June, want: Spring, wantOK: true},
		{month: time.July, wantOK: false},
		{month: time.August, wantOK: false},
		{month: time.September, want: Fall, wantOK: true},
		{month: time.October, want: Fall, wantOK: true},
		{month: time.November, want: Fall, wantOK: true},
		{month: time.December, want: Winter, wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.month.String(), func(t *testing.T) {
			got, ok := FromMonth(tc.month)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("FromMonth(%s)=(%q,%v) want (%q,%v)", tc.month, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		in     Season
		want   Season
		wantOK bool
	}{
		{in: Fall, want: Winter, wantOK: true},
		{in: Winter, want: Spring, wantOK: true},
		{in: Spring, want: Fall, wantOK: true},
		{in: "", wantOK: false},
		{in: "summer", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := Next(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Next(%q)=(%q,%v) want (%q,%v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestAt_UsesLocation(t *testing.T) {
	// 2025-09-01T02:00Z is still August 31st in Toronto.
	instant := time.Date(2025, 9, 1, 2, 0, 0, 0, time.UTC)
	toronto := time.FixedZone("EDT", -4*60*60)

	if got, ok := At(instant, time.UTC); !ok || got != Fall {
		t.Fatalf("expected fall in UTC, got (%q,%v)", got, ok)
	}
	if _, ok := At(instant, toronto); ok {
		t.Fatalf("expected no season in late August local time")
	}
}
