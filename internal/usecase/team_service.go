package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
)

type TeamInput struct {
	LeagueID string
	Name     string
	School   string
	Location string
}

// TeamDetail is a team with its owning league when that league exists.
type TeamDetail struct {
	Team   team.Team
	League *league.League
}

type TeamService struct {
	teamRepo   team.Repository
	leagueRepo league.Repository
	integrity  *IntegrityEngine
	idGen      idgen.Generator
}

func NewTeamService(teamRepo team.Repository, leagueRepo league.Repository, integrity *IntegrityEngine, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		integrity:  integrity,
		idGen:      idGen,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, rawID string) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID, err := parseID("team", rawID)
	if err != nil {
		return TeamDetail{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	detail := TeamDetail{Team: item}
	owner, exists, err := s.leagueRepo.GetByID(ctx, item.LeagueID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team league: %w", err)
	}
	if exists {
		detail.League = &owner
	}

	return detail, nil
}

// ListByLeague reports not found when the league has no teams.
func (s *TeamService) ListByLeague(ctx context.Context, rawLeagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByLeague")
	defer span.End()

	leagueID, err := parseID("league", rawLeagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: no teams for league=%s", ErrNotFound, leagueID)
	}

	return teams, nil
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item, err := s.buildTeam("", input)
	if err != nil {
		return "", err
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return "", fmt.Errorf("create team: %w", err)
	}

	return item.ID, nil
}

func (s *TeamService) Update(ctx context.Context, rawID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	teamID, err := parseID("team", rawID)
	if err != nil {
		return team.Team{}, err
	}

	item, err := s.buildTeam(teamID, input)
	if err != nil {
		return team.Team{}, err
	}

	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !updated {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, rawID string) (DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	return s.integrity.DeleteTeam(ctx, rawID)
}

// buildTeam validates input and assigns a fresh id when teamID is empty.
func (s *TeamService) buildTeam(teamID string, input TeamInput) (team.Team, error) {
	leagueID, err := parseID("league", input.LeagueID)
	if err != nil {
		return team.Team{}, err
	}

	if teamID == "" {
		teamID, err = s.idGen.NewID()
		if err != nil {
			return team.Team{}, fmt.Errorf("generate team id: %w", err)
		}
	}

	item := team.Team{
		ID:       teamID,
		LeagueID: leagueID,
		Name:     input.Name,
		School:   input.School,
		Location: input.Location,
	}.Normalize()
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}
