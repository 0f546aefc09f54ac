package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/account/password"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/account/token"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

// Services holds every use case wired against one Store.
type Services struct {
	Leagues *usecase.LeagueService
	Teams   *usecase.TeamService
	Events  *usecase.EventService
	Auth    *usecase.AuthService
	Import  *usecase.RosterImportService

	// Tokens is nil when JWT_SECRET is not configured.
	Tokens *token.Manager
}

func NewServices(cfg config.Config, store *Store, clock clockwork.Clock, logger *logging.Logger) (*Services, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	ids, err := idgen.NewObjectIDGenerator(clock)
	if err != nil {
		return nil, fmt.Errorf("create id generator: %w", err)
	}

	var (
		tokens *token.Manager
		issuer usecase.TokenIssuer = unavailableIssuer{}
	)
	if cfg.RequireJWTSecret() == nil {
		tokens, err = token.NewManager(token.Config{
			Secret:   cfg.JWTSecret,
			Issuer:   cfg.JWTIssuer,
			TTL:      cfg.AuthTokenTTL,
			GuestTTL: cfg.AuthGuestTTL,
		}, clock)
		if err != nil {
			return nil, fmt.Errorf("create token manager: %w", err)
		}
		issuer = tokens
	}

	integrity := usecase.NewIntegrityEngine(store.UnitOfWork, logger.Named("integrity"))
	planner := usecase.NewEventQueryPlanner(store.Leagues, clock, cfg.SeasonLocation)

	leagues := usecase.NewLeagueService(store.Leagues, integrity, ids)
	teams := usecase.NewTeamService(store.Teams, store.Leagues, integrity, ids)
	events := usecase.NewEventService(planner, store.Events, store.Leagues, store.Teams, ids, cfg.SeasonLocation)

	return &Services{
		Leagues: leagues,
		Teams:   teams,
		Events:  events,
		Auth: usecase.NewAuthService(
			store.Users,
			issuer,
			password.NewBcryptHasher(cfg.AuthBcryptCost),
			ids,
			cfg.AllowAdminSignup,
		),
		Import: usecase.NewRosterImportService(leagues, teams, events, integrity, cfg.ImportWorkers, logger.Named("import")),
		Tokens: tokens,
	}, nil
}

// unavailableIssuer backs AuthService in tools that never issue tokens.
type unavailableIssuer struct{}

func (unavailableIssuer) IssueToken(context.Context, user.Principal) (string, error) {
	return "", fmt.Errorf("%w: token signing is not configured", usecase.ErrDependencyUnavailable)
}
