package event

import "strings"

// DefaultOpponentName is shown whenever an opponent has no usable name,
// including events whose linked team was deleted.
const DefaultOpponentName = "Bayview Glen"

// Opponent is either linked to a registered team or free text. The zero
// value is the unlinked fallback opponent.
type Opponent struct {
	teamID string
	name   string
}

// Linked references a registered team. An empty teamID yields an unlinked
// opponent.
func Linked(teamID, name string) Opponent {
	return Opponent{teamID: strings.TrimSpace(teamID), name: opponentName(name)}
}

func Unlinked(name string) Opponent {
	return Opponent{name: opponentName(name)}
}

// Fallback is the opponent assigned when a linked team disappears.
func Fallback() Opponent {
	return Opponent{name: DefaultOpponentName}
}

// TeamID returns the referenced team, if any.
func (o Opponent) TeamID() (string, bool) {
	if o.teamID == "" {
		return "", false
	}
	return o.teamID, true
}

func (o Opponent) IsLinked() bool {
	return o.teamID != ""
}

func (o Opponent) Name() string {
	if o.name == "" {
		return DefaultOpponentName
	}
	return o.name
}

func (o Opponent) LinkedTo(teamID string) bool {
	return o.teamID != "" && o.teamID == teamID
}

func opponentName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultOpponentName
	}
	return name
}
