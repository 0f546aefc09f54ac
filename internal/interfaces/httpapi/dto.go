package httpapi

import (
	"time"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

type leagueRequest struct {
	Season   string `json:"season" validate:"required,max=40"`
	Sport    string `json:"sport" validate:"required,max=80"`
	AgeGroup string `json:"ageGroup" validate:"required,max=40"`
	Division string `json:"division" validate:"required,max=40"`
	Gender   string `json:"gender" validate:"required,max=40"`
}

func (r leagueRequest) toInput() usecase.LeagueInput {
	return usecase.LeagueInput{
		Season:   r.Season,
		Sport:    r.Sport,
		AgeGroup: r.AgeGroup,
		Division: r.Division,
		Gender:   r.Gender,
	}
}

type teamRequest struct {
	LeagueID string `json:"leagueId" validate:"required"`
	Name     string `json:"name" validate:"required,max=120"`
	School   string `json:"school" validate:"required,max=120"`
	Location string `json:"location" validate:"required,max=200"`
}

func (r teamRequest) toInput() usecase.TeamInput {
	return usecase.TeamInput{
		LeagueID: r.LeagueID,
		Name:     r.Name,
		School:   r.School,
		Location: r.Location,
	}
}

type eventRequest struct {
	Type           string  `json:"type" validate:"required,max=40"`
	LeagueID       string  `json:"leagueId" validate:"required"`
	Location       string  `json:"location" validate:"required,max=200"`
	Date           string  `json:"date" validate:"required"`
	Time           string  `json:"time" validate:"required,max=20"`
	OpposingTeam   string  `json:"opposingTeam" validate:"max=120"`
	OpposingTeamID *string `json:"opposingTeamId"`
	Notes          string  `json:"notes" validate:"max=2000"`
}

func (r eventRequest) toInput() usecase.EventInput {
	input := usecase.EventInput{
		Type:         r.Type,
		LeagueID:     r.LeagueID,
		Location:     r.Location,
		Date:         r.Date,
		Time:         r.Time,
		OpposingTeam: r.OpposingTeam,
		Notes:        r.Notes,
	}
	if r.OpposingTeamID != nil {
		input.OpposingTeamID = *r.OpposingTeamID
	}
	return input
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

type createdDTO struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type messageDTO struct {
	Message string `json:"message"`
}

type deleteResultDTO struct {
	Message        string `json:"message"`
	TeamsDeleted   int64  `json:"teamsDeleted"`
	EventsDeleted  int64  `json:"eventsDeleted"`
	EventsUnlinked int64  `json:"eventsUnlinked"`
}

type tokenDTO struct {
	Token string `json:"token"`
}

type registeredDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type dashboardDTO struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	IsAdmin  bool   `json:"isAdmin"`
}

type mapsKeyDTO struct {
	Key string `json:"key"`
}

type leagueDTO struct {
	ID       string `json:"id"`
	Season   string `json:"season"`
	Sport    string `json:"sport"`
	AgeGroup string `json:"ageGroup"`
	Division string `json:"division"`
	Gender   string `json:"gender"`
}

// leagueRefDTO is the league summary embedded in team and event details.
type leagueRefDTO struct {
	ID       string `json:"id"`
	Sport    string `json:"sport"`
	AgeGroup string `json:"ageGroup"`
}

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	School   string `json:"school"`
	Location string `json:"location"`
}

type teamDetailDTO struct {
	teamDTO
	League *leagueRefDTO `json:"league"`
}

type teamRefDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	School string `json:"school"`
}

type eventDTO struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	LeagueID       string  `json:"leagueId"`
	Location       string  `json:"location"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	OpposingTeam   string  `json:"opposingTeam"`
	OpposingTeamID *string `json:"opposingTeamId"`
	Notes          string  `json:"notes"`
}

type eventDetailDTO struct {
	eventDTO
	League *leagueRefDTO `json:"league"`
	Team   *teamRefDTO   `json:"team"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:       l.ID,
		Season:   l.Season,
		Sport:    l.Sport,
		AgeGroup: l.AgeGroup,
		Division: l.Division,
		Gender:   l.Gender,
	}
}

func leagueToRefDTO(l *league.League) *leagueRefDTO {
	if l == nil {
		return nil
	}
	return &leagueRefDTO{ID: l.ID, Sport: l.Sport, AgeGroup: l.AgeGroup}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		LeagueID: t.LeagueID,
		Name:     t.Name,
		School:   t.School,
		Location: t.Location,
	}
}

func teamToRefDTO(t *team.Team) *teamRefDTO {
	if t == nil {
		return nil
	}
	return &teamRefDTO{ID: t.ID, Name: t.Name, School: t.School}
}

func eventToDTO(e event.Event) eventDTO {
	out := eventDTO{
		ID:           e.ID,
		Type:         e.Type,
		LeagueID:     e.LeagueID,
		Location:     e.Location,
		Date:         e.Date.UTC().Format(time.RFC3339),
		Time:         e.Time,
		OpposingTeam: e.Opponent.Name(),
		Notes:        e.Notes,
	}
	if teamID, ok := e.Opponent.TeamID(); ok {
		out.OpposingTeamID = &teamID
	}
	return out
}

func deleteResultToDTO(message string, r usecase.DeleteResult) deleteResultDTO {
	return deleteResultDTO{
		Message:        message,
		TeamsDeleted:   r.TeamsDeleted,
		EventsDeleted:  r.EventsDeleted,
		EventsUnlinked: r.EventsUnlinked,
	}
}
