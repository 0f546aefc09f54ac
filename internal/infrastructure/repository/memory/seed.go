package memory

import (
	"time"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
)

const (
	LeagueIDSoccerU14Boys    = "68cc2c800000000000000001"
	LeagueIDBasketballU16    = "68cc2c800000000000000002"
	LeagueIDVolleyballSenior = "68cc2c800000000000000003"

	TeamIDCrescent  = "68cc2c800000000000000101"
	TeamIDStAndrews = "68cc2c800000000000000102"
	TeamIDUCC       = "68cc2c800000000000000103"
	TeamIDHavergal  = "68cc2c800000000000000104"
	TeamIDBranksome = "68cc2c800000000000000105"
)

// SeedDemo loads a small demo dataset for local development.
func (s *Store) SeedDemo() {
	s.Load(SeedLeagues(), SeedTeams(), SeedEvents())
}

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDSoccerU14Boys, Season: "fall", Sport: "soccer", AgeGroup: "u14", Division: "a", Gender: "boys"},
		{ID: LeagueIDBasketballU16, Season: "winter", Sport: "basketball", AgeGroup: "u16", Division: "a", Gender: "girls"},
		{ID: LeagueIDVolleyballSenior, Season: "spring", Sport: "volleyball", AgeGroup: "senior", Division: "b", Gender: "co-ed"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDCrescent, LeagueID: LeagueIDSoccerU14Boys, Name: "Crescent Colts", School: "Crescent School", Location: "Toronto"},
		{ID: TeamIDStAndrews, LeagueID: LeagueIDSoccerU14Boys, Name: "St. Andrew's Saints", School: "St. Andrew's College", Location: "Aurora"},
		{ID: TeamIDUCC, LeagueID: LeagueIDSoccerU14Boys, Name: "UCC Blues", School: "Upper Canada College", Location: "Toronto"},
		{ID: TeamIDHavergal, LeagueID: LeagueIDBasketballU16, Name: "Havergal Gators", School: "Havergal College", Location: "Toronto"},
		{ID: TeamIDBranksome, LeagueID: LeagueIDBasketballU16, Name: "Branksome Panthers", School: "Branksome Hall", Location: "Toronto"},
	}
}

func SeedEvents() []event.Event {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	return []event.Event{
		{ID: "68cc2c800000000000000201", Type: "game", LeagueID: LeagueIDSoccerU14Boys, Location: "Bayview Glen Field", Date: day(2025, time.September, 18), Time: "16:00", Opponent: event.Linked(TeamIDCrescent, "Crescent Colts")},
		{ID: "68cc2c800000000000000202", Type: "game", LeagueID: LeagueIDSoccerU14Boys, Location: "St. Andrew's College", Date: day(2025, time.September, 25), Time: "15:30", Opponent: event.Linked(TeamIDStAndrews, "St. Andrew's Saints")},
		{ID: "68cc2c800000000000000203", Type: "practice", LeagueID: LeagueIDSoccerU14Boys, Location: "Bayview Glen Field", Date: day(2025, time.October, 2), Time: "15:45", Opponent: event.Unlinked(""), Notes: "Bring pinnies"},
		{ID: "68cc2c800000000000000204", Type: "game", LeagueID: LeagueIDBasketballU16, Location: "Havergal Gym", Date: day(2025, time.December, 4), Time: "17:00", Opponent: event.Linked(TeamIDHavergal, "Havergal Gators")},
		{ID: "68cc2c800000000000000205", Type: "tournament", LeagueID: LeagueIDVolleyballSenior, Location: "Bayview Glen Gym", Date: day(2026, time.April, 15), Time: "09:00", Opponent: event.Unlinked("CISAA Invitational")},
	}
}
