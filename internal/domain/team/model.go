package team

import (
	"fmt"
	"strings"
)

// Team is an opposing school team registered under one league.
type Team struct {
	ID       string
	LeagueID string
	Name     string
	School   string
	Location string
}

func (t Team) Normalize() Team {
	t.ID = strings.TrimSpace(t.ID)
	t.LeagueID = strings.ToLower(strings.TrimSpace(t.LeagueID))
	t.Name = strings.TrimSpace(t.Name)
	t.School = strings.TrimSpace(t.School)
	t.Location = strings.TrimSpace(t.Location)
	return t
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.School == "" {
		return fmt.Errorf("team school is required")
	}
	if t.Location == "" {
		return fmt.Errorf("team location is required")
	}

	return nil
}
