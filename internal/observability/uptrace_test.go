package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUptrace_Disabled(t *testing.T) {
	base := logging.NewNop()
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "sports-schedule-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	logger, shutdown, err := InitUptrace(cfg, base)
	require.NoError(t, err)
	assert.Same(t, base, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitUptrace_EnabledWithoutDSNStaysDisabled(t *testing.T) {
	base := logging.NewNop()
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	logger, shutdown, err := InitUptrace(cfg, base)
	require.NoError(t, err)
	assert.Same(t, base, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, stop())
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, srv)
	assert.NoError(t, StopPprofServer(srv, nil, 0))
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{
		AppEnv:         config.EnvProd,
		ServiceName:    "sports-schedule-api",
		ServiceVersion: "1.4.0",
		StoreBackend:   config.StoreBackendPostgres,
		CacheEnabled:   true,
	})
	assert.Equal(t, map[string]string{
		"env":           config.EnvProd,
		"service":       "sports-schedule-api",
		"version":       "1.4.0",
		"store_backend": config.StoreBackendPostgres,
		"cache":         "on",
	}, tags)

	tags = profileTags(config.Config{StoreBackend: config.StoreBackendMemory})
	assert.NotContains(t, tags, "version")
	assert.Equal(t, "off", tags["cache"])
}
