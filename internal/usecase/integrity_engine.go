package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
)

// Step names of the cascading deletes, in execution order.
const (
	StepDeleteLeagueTeams       = "delete-league-teams"
	StepClearOpponentReferences = "clear-opponent-references"
	StepDeleteLeagueEvents      = "delete-league-events"
	StepDeleteLeague            = "delete-league"
	StepDeleteTeam              = "delete-team"
)

// DeleteResult counts the rows touched by a cascading delete.
type DeleteResult struct {
	TeamsDeleted   int64
	EventsDeleted  int64
	EventsUnlinked int64
}

// IntegrityEngine owns every delete that has to keep cross-entity
// references consistent. Each delete runs as one unit of work.
type IntegrityEngine struct {
	uow    unitofwork.UnitOfWork
	logger *logging.Logger
}

func NewIntegrityEngine(uow unitofwork.UnitOfWork, logger *logging.Logger) *IntegrityEngine {
	if logger == nil {
		logger = logging.Default()
	}

	return &IntegrityEngine{uow: uow, logger: logger}
}

// DeleteLeague removes a league together with its teams and events. Events
// in other leagues that were linked to one of its teams fall back to the
// default opponent.
func (e *IntegrityEngine) DeleteLeague(ctx context.Context, rawID string) (DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IntegrityEngine.DeleteLeague")
	defer span.End()

	leagueID, err := parseID("league", rawID)
	if err != nil {
		return DeleteResult{}, err
	}

	var (
		result  DeleteResult
		teamIDs []string
	)
	steps := []unitofwork.Step{
		// Unlinking uses exactly the ids the delete removed.
		{Name: StepDeleteLeagueTeams, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			ids, err := repos.Teams.DeleteByLeague(ctx, leagueID)
			teamIDs = ids
			result.TeamsDeleted = int64(len(ids))
			return err
		}},
		{Name: StepClearOpponentReferences, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			n, err := repos.Events.UnlinkOpponents(ctx, teamIDs, leagueID)
			result.EventsUnlinked = n
			return err
		}},
		{Name: StepDeleteLeagueEvents, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			n, err := repos.Events.DeleteByLeague(ctx, leagueID)
			result.EventsDeleted = n
			return err
		}},
		{Name: StepDeleteLeague, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			deleted, err := repos.Leagues.Delete(ctx, leagueID)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
			}
			return nil
		}},
	}

	if err := e.uow.Run(ctx, "delete-league", steps...); err != nil {
		return DeleteResult{}, e.unitError("delete league", err)
	}

	e.logger.InfoContext(ctx, "league deleted",
		"league_id", leagueID,
		"teams_deleted", result.TeamsDeleted,
		"events_deleted", result.EventsDeleted,
		"events_unlinked", result.EventsUnlinked,
	)
	return result, nil
}

// DeleteTeam removes a team. Events that referenced it keep existing with
// the default opponent.
func (e *IntegrityEngine) DeleteTeam(ctx context.Context, rawID string) (DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IntegrityEngine.DeleteTeam")
	defer span.End()

	teamID, err := parseID("team", rawID)
	if err != nil {
		return DeleteResult{}, err
	}

	var result DeleteResult
	steps := []unitofwork.Step{
		{Name: StepClearOpponentReferences, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			n, err := repos.Events.UnlinkOpponents(ctx, []string{teamID}, "")
			result.EventsUnlinked = n
			return err
		}},
		{Name: StepDeleteTeam, Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			deleted, err := repos.Teams.Delete(ctx, teamID)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
			}
			result.TeamsDeleted = 1
			return nil
		}},
	}

	if err := e.uow.Run(ctx, "delete-team", steps...); err != nil {
		return DeleteResult{}, e.unitError("delete team", err)
	}

	e.logger.InfoContext(ctx, "team deleted",
		"team_id", teamID,
		"events_unlinked", result.EventsUnlinked,
	)
	return result, nil
}

func (e *IntegrityEngine) unitError(op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, unitofwork.ErrUnavailable):
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
