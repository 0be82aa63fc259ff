package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-ddd-events/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Events.Forward)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  address: ":9090"
  read_timeout: 3s
database:
  driver: postgres
  dsn: "host=db"
events:
  forward: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DDD_LOGGER_LEVEL", "debug")
	t.Setenv("DDD_DATABASE_DSN", "host=override")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=override", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Events.Forward)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(c *config.Config)
		errorContains string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:          "unknown driver",
			mutate:        func(c *config.Config) { c.Database.Driver = "mysql" },
			errorContains: "not supported",
		},
		{
			name:          "empty dsn",
			mutate:        func(c *config.Config) { c.Database.DSN = "" },
			errorContains: "database.dsn is required",
		},
		{
			name:          "empty address",
			mutate:        func(c *config.Config) { c.Server.Address = "" },
			errorContains: "server.address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{
				Server:   config.ServerConfig{Address: ":8080"},
				Database: config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file::memory:"},
			}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
