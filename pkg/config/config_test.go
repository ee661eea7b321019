package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PG.TotalRooms)
	assert.Equal(t, 101, cfg.PG.FirstRoom)
	assert.Equal(t, config.StoragePostgres, cfg.App.Storage)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Redis.NoticeTTL)
	assert.False(t, cfg.Bootstrap.Enabled())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("PG_TOTAL_ROOMS", "24")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ADMIN_EMAIL", "owner@pg.test")
	t.Setenv("ADMIN_PASSWORD", "owner-password")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.PG.TotalRooms)
	assert.Equal(t, config.StorageMemory, cfg.App.Storage)
	assert.True(t, cfg.Bootstrap.Enabled())
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_SinSecretoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Storage: config.StorageMemory},
		JWT: config.JWTConfig{Secret: "s"},
		PG:  config.PGConfig{TotalRooms: 0},
	}
	assert.Error(t, cfg.Validate(), "cero habitaciones no es válido")

	cfg.PG.TotalRooms = 5
	assert.NoError(t, cfg.Validate())

	cfg.App.Storage = "mongo"
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "pg", Password: "p@ss", DBName: "smart_pg", SSLMode: "disable"}
	assert.Equal(t, "postgres://pg:p%40ss@db:5432/smart_pg?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}
