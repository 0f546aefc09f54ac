package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
)

// App is the assembled HTTP service.
type App struct {
	Server   *http.Server
	Services *Services
	store    *Store
}

// New opens the configured store and wires services, router and server.
// JWT_SECRET is mandatory here because the router verifies tokens.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if err := cfg.RequireJWTSecret(); err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	services, err := NewServices(cfg, store, clockwork.NewRealClock(), logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	server, err := NewHTTPServer(cfg, services, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{Server: server, Services: services, store: store}, nil
}

// NewHTTPServer builds the router over services. Internal error details are
// only exposed outside prod.
func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if services == nil || services.Tokens == nil {
		return nil, fmt.Errorf("token manager is required to serve http")
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(
		services.Leagues,
		services.Teams,
		services.Events,
		services.Auth,
		cfg.GoogleMapsAPIKey,
		!cfg.IsProd(),
		logger.Named("httpapi"),
	)
	router := httpapi.NewRouter(handler, services.Tokens, logger.Named("http"), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// Close releases the store. Call after the server has shut down.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.store.Close()
}
