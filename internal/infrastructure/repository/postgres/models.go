package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
)

var (
	leagueColumns = []string{"id", "season", "sport", "age_group", "division", "gender"}
	teamColumns   = []string{"id", "league_id", "name", "school", "location"}
	eventColumns  = []string{"id", "type", "league_id", "location", "event_date", "event_time", "opposing_team", "opposing_team_id", "notes"}
	userColumns   = []string{"id", "username", "password_hash", "is_admin"}
)

type leagueTableModel struct {
	ID       string `db:"id"`
	Season   string `db:"season"`
	Sport    string `db:"sport"`
	AgeGroup string `db:"age_group"`
	Division string `db:"division"`
	Gender   string `db:"gender"`
}

func leagueToModel(item league.League) leagueTableModel {
	return leagueTableModel{
		ID:       item.ID,
		Season:   item.Season,
		Sport:    item.Sport,
		AgeGroup: item.AgeGroup,
		Division: item.Division,
		Gender:   item.Gender,
	}
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:       m.ID,
		Season:   m.Season,
		Sport:    m.Sport,
		AgeGroup: m.AgeGroup,
		Division: m.Division,
		Gender:   m.Gender,
	}
}

type teamTableModel struct {
	ID       string `db:"id"`
	LeagueID string `db:"league_id"`
	Name     string `db:"name"`
	School   string `db:"school"`
	Location string `db:"location"`
}

func teamToModel(item team.Team) teamTableModel {
	return teamTableModel{
		ID:       item.ID,
		LeagueID: item.LeagueID,
		Name:     item.Name,
		School:   item.School,
		Location: item.Location,
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.ID,
		LeagueID: m.LeagueID,
		Name:     m.Name,
		School:   m.School,
		Location: m.Location,
	}
}

type eventTableModel struct {
	ID             string         `db:"id"`
	Type           string         `db:"type"`
	LeagueID       string         `db:"league_id"`
	Location       string         `db:"location"`
	EventDate      time.Time      `db:"event_date"`
	EventTime      string         `db:"event_time"`
	OpposingTeam   string         `db:"opposing_team"`
	OpposingTeamID sql.NullString `db:"opposing_team_id"`
	Notes          string         `db:"notes"`
}

func eventToModel(item event.Event) eventTableModel {
	teamID, linked := item.Opponent.TeamID()
	return eventTableModel{
		ID:             item.ID,
		Type:           item.Type,
		LeagueID:       item.LeagueID,
		Location:       item.Location,
		EventDate:      item.Date.UTC(),
		EventTime:      item.Time,
		OpposingTeam:   item.Opponent.Name(),
		OpposingTeamID: sql.NullString{String: teamID, Valid: linked},
		Notes:          item.Notes,
	}
}

func (m eventTableModel) toDomain() event.Event {
	opponent := event.Unlinked(m.OpposingTeam)
	if m.OpposingTeamID.Valid {
		opponent = event.Linked(m.OpposingTeamID.String, m.OpposingTeam)
	}

	return event.Event{
		ID:       m.ID,
		Type:     m.Type,
		LeagueID: m.LeagueID,
		Location: m.Location,
		Date:     m.EventDate.UTC(),
		Time:     m.EventTime,
		Opponent: opponent,
		Notes:    m.Notes,
	}
}

type userTableModel struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
	}
}
