package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
)

type LeagueInput struct {
	Season   string
	Sport    string
	AgeGroup string
	Division string
	Gender   string
}

func (in LeagueInput) toLeague(id string) league.League {
	return league.League{
		ID:       id,
		Season:   in.Season,
		Sport:    in.Sport,
		AgeGroup: in.AgeGroup,
		Division: in.Division,
		Gender:   in.Gender,
	}.Normalize()
}

type LeagueService struct {
	leagueRepo league.Repository
	integrity  *IntegrityEngine
	idGen      idgen.Generator
}

func NewLeagueService(leagueRepo league.Repository, integrity *IntegrityEngine, idGen idgen.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		integrity:  integrity,
		idGen:      idGen,
	}
}

func (s *LeagueService) List(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.List")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) Get(ctx context.Context, rawID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Get")
	defer span.End()

	leagueID, err := parseID("league", rawID)
	if err != nil {
		return league.League{}, err
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// Create stores a new league and returns its id.
func (s *LeagueService) Create(ctx context.Context, input LeagueInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Create")
	defer span.End()

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate league id: %w", err)
	}

	item := input.toLeague(leagueID)
	if err := item.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return "", fmt.Errorf("create league: %w", err)
	}

	return leagueID, nil
}

// Update replaces every field of an existing league.
func (s *LeagueService) Update(ctx context.Context, rawID string, input LeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Update")
	defer span.End()

	leagueID, err := parseID("league", rawID)
	if err != nil {
		return league.League{}, err
	}

	item := input.toLeague(leagueID)
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.leagueRepo.Update(ctx, item)
	if err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}
	if !updated {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) Delete(ctx context.Context, rawID string) (DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Delete")
	defer span.End()

	return s.integrity.DeleteLeague(ctx, rawID)
}
