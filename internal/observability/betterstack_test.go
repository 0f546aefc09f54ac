package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type betterStackRecorder struct {
	mu       sync.Mutex
	bodies   []string
	lastAuth string
}

func (r *betterStackRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, string(body))
		r.lastAuth = req.Header.Get("Authorization")
		r.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
}

func (r *betterStackRecorder) snapshot() ([]string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.bodies...), r.lastAuth
}

func betterStackTestConfig(endpoint string) config.Config {
	return config.Config{
		BetterStackEnabled:  true,
		BetterStackEndpoint: endpoint,
		BetterStackToken:    "secret-token",
		BetterStackTimeout:  2 * time.Second,
		BetterStackMinLevel: logging.LevelError,
		ServiceName:         "sports-schedule-api",
		AppEnv:              config.EnvDev,
	}
}

func TestInitBetterStackLogger_SendsErrorLog(t *testing.T) {
	t.Parallel()

	recorder := &betterStackRecorder{}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackTestConfig(server.URL), logging.NewNop())
	require.NoError(t, err)

	logger.ErrorContext(context.Background(), "delete league failed", "component", "integrity")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))

	bodies, auth := recorder.snapshot()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], `"msg":"delete league failed"`)
	assert.Contains(t, bodies[0], `"component":"integrity"`)
	assert.Equal(t, "Bearer secret-token", auth)
}

func TestInitBetterStackLogger_RespectsMinLevel(t *testing.T) {
	t.Parallel()

	recorder := &betterStackRecorder{}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackTestConfig(server.URL), logging.NewNop())
	require.NoError(t, err)

	logger.InfoContext(context.Background(), "info log should not be shipped")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))

	bodies, _ := recorder.snapshot()
	assert.Empty(t, bodies)
}

func TestInitBetterStackLogger_Disabled(t *testing.T) {
	base := logging.NewNop()
	logger, shutdown, err := InitBetterStackLogger(config.Config{}, base)
	require.NoError(t, err)
	assert.Same(t, base, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestBetterStackWriteSyncer_DropsAfterClose(t *testing.T) {
	recorder := &betterStackRecorder{}
	server := httptest.NewServer(recorder.handler())
	defer server.Close()

	syncer := newBetterStackWriteSyncer(server.URL, "", time.Second)
	require.NoError(t, syncer.Close(context.Background()))

	n, err := syncer.Write([]byte(`{"msg":"late"}`))
	require.NoError(t, err)
	assert.Equal(t, len(`{"msg":"late"}`), n)

	bodies, _ := recorder.snapshot()
	assert.Empty(t, bodies)
}

func TestNormalizeBetterStackEndpoint(t *testing.T) {
	assert.Equal(t, "", normalizeBetterStackEndpoint("  "))
	assert.Equal(t, "https://in.logs.example.com", normalizeBetterStackEndpoint("in.logs.example.com"))
	assert.Equal(t, "http://localhost:9000", normalizeBetterStackEndpoint("http://localhost:9000"))
}
