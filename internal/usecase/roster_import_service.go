package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
)

const (
	defaultImportWorkers = 8
	placeholderID        = "000000000000000000000000"
)

// Roster is a batch of leagues with their teams and events. Team keys are
// unique across the whole roster and events may reference any of them.
type Roster struct {
	Leagues []RosterLeague
}

type RosterLeague struct {
	Key    string
	League LeagueInput
	Teams  []RosterTeam
	Events []RosterEvent
}

type RosterTeam struct {
	Key      string
	Name     string
	School   string
	Location string
}

type RosterEvent struct {
	Type         string
	Location     string
	Date         string
	Time         string
	OpponentKey  string
	OpposingTeam string
	Notes        string
}

type ImportResult struct {
	Leagues int
	Teams   int
	Events  int
}

// RosterImportService creates leagues first, then fans teams and events out
// over a worker pool. A failed import deletes every league it created, which
// cascades to the teams and events written so far.
type RosterImportService struct {
	leagues   *LeagueService
	teams     *TeamService
	events    *EventService
	integrity *IntegrityEngine
	workers   int
	logger    *logging.Logger
}

func NewRosterImportService(
	leagues *LeagueService,
	teams *TeamService,
	events *EventService,
	integrity *IntegrityEngine,
	workers int,
	logger *logging.Logger,
) *RosterImportService {
	if workers < 1 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterImportService{
		leagues:   leagues,
		teams:     teams,
		events:    events,
		integrity: integrity,
		workers:   workers,
		logger:    logger,
	}
}

type importedTeam struct {
	id   string
	name string
}

func (s *RosterImportService) Import(ctx context.Context, roster Roster) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterImportService.Import")
	defer span.End()

	if err := s.validate(roster); err != nil {
		return ImportResult{}, err
	}

	var leagueIDs []string
	result, err := s.write(ctx, roster, &leagueIDs)
	if err != nil {
		if undoErr := s.rollback(ctx, leagueIDs); undoErr != nil {
			err = errors.CombineErrors(err, undoErr)
		}
		return ImportResult{}, err
	}

	s.logger.InfoContext(ctx, "roster imported",
		"leagues", result.Leagues,
		"teams", result.Teams,
		"events", result.Events,
	)
	return result, nil
}

// rollback deletes the created leagues. It ignores cancellation of ctx so an
// aborted import still cleans up.
func (s *RosterImportService) rollback(ctx context.Context, leagueIDs []string) error {
	if len(leagueIDs) == 0 {
		return nil
	}
	if s.integrity == nil {
		return errors.Newf("rollback unavailable: %d imported leagues left in place", len(leagueIDs))
	}

	ctx = context.WithoutCancel(ctx)
	var failures error
	for _, id := range leagueIDs {
		if _, err := s.integrity.DeleteLeague(ctx, id); err != nil {
			failures = errors.CombineErrors(failures, errors.Wrapf(err, "rollback league %s", id))
		}
	}
	if failures != nil {
		s.logger.ErrorContext(ctx, "roster import rollback incomplete", "leagues", len(leagueIDs), "error", failures)
		return failures
	}

	s.logger.WarnContext(ctx, "roster import rolled back", "leagues", len(leagueIDs))
	return nil
}

// write creates the roster and appends each created league id to leagueIDs
// as soon as it exists.
func (s *RosterImportService) write(ctx context.Context, roster Roster, leagueIDs *[]string) (ImportResult, error) {
	var result ImportResult
	for _, rl := range roster.Leagues {
		id, err := s.leagues.Create(ctx, rl.League)
		if err != nil {
			return result, errors.Wrapf(err, "import league %q", rl.Key)
		}
		*leagueIDs = append(*leagueIDs, id)
		result.Leagues++
	}
	created := *leagueIDs

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return result, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		failures error
		teams    = make(map[string]importedTeam)
		count    atomic.Int32
	)
	fail := func(err error) {
		mu.Lock()
		failures = errors.CombineErrors(failures, err)
		mu.Unlock()
	}

	err = s.fanOut(pool, func(submit func(func()) error) error {
		for i, rl := range roster.Leagues {
			leagueID := created[i]
			for _, rt := range rl.Teams {
				if err := submit(func() {
					id, err := s.teams.Create(ctx, TeamInput{LeagueID: leagueID, Name: rt.Name, School: rt.School, Location: rt.Location})
					if err != nil {
						fail(errors.Wrapf(err, "import team %q", rt.Key))
						return
					}
					mu.Lock()
					teams[rt.Key] = importedTeam{id: id, name: strings.TrimSpace(rt.Name)}
					mu.Unlock()
					count.Add(1)
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	result.Teams = int(count.Load())
	if err != nil {
		return result, err
	}
	if failures != nil {
		return result, failures
	}

	count.Store(0)
	err = s.fanOut(pool, func(submit func(func()) error) error {
		for i, rl := range roster.Leagues {
			leagueID := created[i]
			for j, re := range rl.Events {
				input := eventInputFromRoster(leagueID, re)
				if key := strings.TrimSpace(re.OpponentKey); key != "" {
					linked := teams[key]
					input.OpposingTeamID = linked.id
					if strings.TrimSpace(input.OpposingTeam) == "" {
						input.OpposingTeam = linked.name
					}
				}
				if err := submit(func() {
					if _, err := s.events.Create(ctx, input); err != nil {
						fail(errors.Wrapf(err, "import event %d of league %q", j, rl.Key))
						return
					}
					count.Add(1)
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	result.Events = int(count.Load())
	if err != nil {
		return result, err
	}
	if failures != nil {
		return result, failures
	}

	return result, nil
}

// fanOut submits tasks to pool and waits for every submitted task.
func (s *RosterImportService) fanOut(pool *ants.Pool, enqueue func(submit func(func()) error) error) error {
	var workers sync.WaitGroup
	submit := func(task func()) error {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			task()
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
		return nil
	}

	err := enqueue(submit)
	workers.Wait()
	return err
}

// validate checks the whole roster before anything is written.
func (s *RosterImportService) validate(roster Roster) error {
	if len(roster.Leagues) == 0 {
		return fmt.Errorf("%w: roster has no leagues", ErrInvalidInput)
	}

	var problems error
	teamKeys := make(map[string]struct{})
	for _, rl := range roster.Leagues {
		for _, rt := range rl.Teams {
			key := strings.TrimSpace(rt.Key)
			if key == "" {
				problems = errors.CombineErrors(problems, errors.Newf("league %q: team %q has no key", rl.Key, rt.Name))
				continue
			}
			if _, dup := teamKeys[key]; dup {
				problems = errors.CombineErrors(problems, errors.Newf("duplicate team key %q", key))
			}
			teamKeys[key] = struct{}{}
		}
	}

	for _, rl := range roster.Leagues {
		if err := rl.League.toLeague(placeholderID).Validate(); err != nil {
			problems = errors.CombineErrors(problems, errors.Wrapf(err, "league %q", rl.Key))
		}
		for _, rt := range rl.Teams {
			input := TeamInput{LeagueID: placeholderID, Name: rt.Name, School: rt.School, Location: rt.Location}
			if _, err := s.teams.buildTeam(placeholderID, input); err != nil {
				problems = errors.CombineErrors(problems, errors.Wrapf(err, "league %q team %q", rl.Key, rt.Key))
			}
		}
		for i, re := range rl.Events {
			if key := strings.TrimSpace(re.OpponentKey); key != "" {
				if _, ok := teamKeys[key]; !ok {
					problems = errors.CombineErrors(problems, errors.Newf("league %q event %d: unknown opponent key %q", rl.Key, i, key))
				}
			}
			if _, err := s.events.buildEvent(placeholderID, eventInputFromRoster(placeholderID, re)); err != nil {
				problems = errors.CombineErrors(problems, errors.Wrapf(err, "league %q event %d", rl.Key, i))
			}
		}
	}

	if problems != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, problems)
	}
	return nil
}

func eventInputFromRoster(leagueID string, re RosterEvent) EventInput {
	return EventInput{
		Type:         re.Type,
		LeagueID:     leagueID,
		Location:     re.Location,
		Date:         re.Date,
		Time:         re.Time,
		OpposingTeam: re.OpposingTeam,
		Notes:        re.Notes,
	}
}
