package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.Server.Addr)
	assert.Equal(t, ":9999", cfg.Server.DiagAddr)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "nc_news", cfg.Database.Name)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NCNEWS_SERVER_ADDR", ":8080")
	t.Setenv("NCNEWS_DATABASE_NAME", "nc_news_test")
	t.Setenv("NCNEWS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "nc_news_test", cfg.Database.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NCNEWS_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:           "localhost",
		Port:           5432,
		User:           "user@host",
		Password:       "pa/ss",
		Name:           "nc_news",
		SSLMode:        "disable",
		ConnectTimeout: 5 * time.Second,
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432/nc_news")
	assert.Contains(t, dsn, "user%40host")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "connect_timeout=5")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Addr: ":3333", BasePath: "/api"},
			Database: DatabaseConfig{Host: "localhost", Port: 5432, Name: "nc_news", MaxConns: 4, MinConns: 1},
			Log:      LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing addr", mutate: func(c *Config) { c.Server.Addr = "" }, errMsg: "addr is required"},
		{name: "relative base path", mutate: func(c *Config) { c.Server.BasePath = "api" }, errMsg: "base_path"},
		{name: "bad port", mutate: func(c *Config) { c.Database.Port = 70000 }, errMsg: "invalid database port"},
		{name: "pool sizes", mutate: func(c *Config) { c.Database.MinConns = 8 }, errMsg: "max_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// and restores the previous one when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
