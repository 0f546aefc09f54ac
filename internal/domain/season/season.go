package season

import (
	"strings"
	"time"
)

// Season is the school sports term a league plays in.
type Season string

const (
	Fall   Season = "fall"
	Winter Season = "winter"
	Spring Season = "spring"
)

// FromMonth maps a calendar month to its season. July and August fall
// between terms and have no season.
func FromMonth(month time.Month) (Season, bool) {
	switch month {
	case time.September, time.October, time.November:
		return Fall, true
	case time.December, time.January, time.February, time.March:
		return Winter, true
	case time.April, time.May, time.June:
		return Spring, true
	default:
		return "", false
	}
}

// Next returns the season that follows s. There is no successor for an
// unknown season.
func Next(s Season) (Season, bool) {
	switch s {
	case Fall:
		return Winter, true
	case Winter:
		return Spring, true
	case Spring:
		return Fall, true
	default:
		return "", false
	}
}

// At resolves the season in effect at t, evaluated in loc.
func At(t time.Time, loc *time.Location) (Season, bool) {
	if loc != nil {
		t = t.In(loc)
	}
	return FromMonth(t.Month())
}

func Parse(raw string) Season {
	return Season(strings.ToLower(strings.TrimSpace(raw)))
}

func (s Season) String() string {
	return string(s)
}
