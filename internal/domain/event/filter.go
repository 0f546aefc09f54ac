package event

import (
	"slices"
	"time"
)

// Filter narrows an event listing. Nil slices do not constrain the result;
// a non-nil empty slice matches nothing.
type Filter struct {
	LeagueIDs       []string
	OpposingTeamIDs []string
	DateFrom        *time.Time
	DateTo          *time.Time
}

// Matches reports whether item satisfies every condition in f.
func (f Filter) Matches(item Event) bool {
	if f.LeagueIDs != nil && !slices.Contains(f.LeagueIDs, item.LeagueID) {
		return false
	}
	if f.OpposingTeamIDs != nil {
		teamID, ok := item.Opponent.TeamID()
		if !ok || !slices.Contains(f.OpposingTeamIDs, teamID) {
			return false
		}
	}
	if f.DateFrom != nil && item.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && item.Date.After(*f.DateTo) {
		return false
	}
	return true
}

// Empty reports whether f can never match.
func (f Filter) Empty() bool {
	if f.LeagueIDs != nil && len(f.LeagueIDs) == 0 {
		return true
	}
	if f.OpposingTeamIDs != nil && len(f.OpposingTeamIDs) == 0 {
		return true
	}
	return f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo)
}
