package event

import (
	"fmt"
	"strings"
	"time"
)

// Event is a scheduled game or practice owned by a league.
type Event struct {
	ID       string
	Type     string
	LeagueID string
	Location string
	Date     time.Time
	// Time is display text such as "16:30" and orders lexically.
	Time     string
	Opponent Opponent
	Notes    string
}

func (e Event) Normalize() Event {
	e.ID = strings.TrimSpace(e.ID)
	e.Type = strings.TrimSpace(e.Type)
	e.LeagueID = strings.ToLower(strings.TrimSpace(e.LeagueID))
	e.Location = strings.TrimSpace(e.Location)
	e.Time = strings.TrimSpace(e.Time)
	e.Notes = strings.TrimSpace(e.Notes)
	if !e.Date.IsZero() {
		e.Date = e.Date.UTC()
	}
	return e
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if e.LeagueID == "" {
		return fmt.Errorf("event league id is required")
	}
	if e.Location == "" {
		return fmt.Errorf("event location is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("event date is required")
	}
	if e.Time == "" {
		return fmt.Errorf("event time is required")
	}

	return nil
}

// Less orders events by date, then time text, then id.
func Less(a, b Event) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.ID < b.ID
}
