package league

import (
	"fmt"
	"strings"
)

// League groups teams and events for one season, sport and division.
type League struct {
	ID       string
	Season   string
	Sport    string
	AgeGroup string
	Division string
	Gender   string
}

// Normalize trims and lower-cases every descriptive field.
func (l League) Normalize() League {
	l.ID = strings.TrimSpace(l.ID)
	l.Season = normalizeText(l.Season)
	l.Sport = normalizeText(l.Sport)
	l.AgeGroup = normalizeText(l.AgeGroup)
	l.Division = normalizeText(l.Division)
	l.Gender = normalizeText(l.Gender)
	return l
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}
	if l.Sport == "" {
		return fmt.Errorf("league sport is required")
	}
	if l.AgeGroup == "" {
		return fmt.Errorf("league age group is required")
	}
	if l.Division == "" {
		return fmt.Errorf("league division is required")
	}
	if l.Gender == "" {
		return fmt.Errorf("league gender is required")
	}

	return nil
}

func normalizeText(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
