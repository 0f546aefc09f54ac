package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
		StoreBackend:       config.StoreBackendMemory,
		StoreSeedDemo:      true,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		SeasonLocation:     time.UTC,
		JWTSecret:          "app-test-secret-0123456789",
		JWTIssuer:          "sports-schedule",
		AuthTokenTTL:       time.Hour,
		AuthGuestTTL:       time.Hour,
		AuthBcryptCost:     4,
		ImportWorkers:      2,
	}
}

func TestNew_MemoryBackendServesSeededLeagues(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	srv := httptest.NewServer(a.Server.Handler)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/leagues")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		APIVersion string `json:"apiVersion"`
		Data       []any  `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2.0", body.APIVersion)
	assert.Len(t, body.Data, 3)
}

func TestNew_GuestTokenCannotWrite(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	guest, err := a.Services.Auth.Guest(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/leagues", strings.NewReader(`{"season":"fall","sport":"hockey","ageGroup":"u14","division":"a","gender":"girls"}`))
	req.Header.Set("Authorization", "Bearer "+guest)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNew_RequiresJWTSecret(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWTSecret = ""

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewServices_WithoutSecretCannotIssueTokens(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWTSecret = ""

	store, err := OpenStore(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	services, err := NewServices(cfg, store, clockwork.NewFakeClock(), logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, services.Tokens)

	_, err = services.Auth.Guest(context.Background())
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)

	created, err := services.Auth.CreateAdmin(context.Background(), "director", "correct horse")
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	_, err = NewHTTPServer(cfg, services, logging.NewNop())
	require.Error(t, err)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "mongo"

	_, err := OpenStore(context.Background(), cfg, nil)
	require.Error(t, err)
}
