package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ong-capacita/logistica-api/pkg/config"
)

func TestDSN(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word",
		DBName:   "logistica",
		SSLMode:  "disable",
	}
	// La contraseña va URL-encoded
	assert.Equal(t,
		"postgres://postgres:p%40ss:word@localhost:5432/logistica?sslmode=disable",
		db.DSN())
}

func TestConnectionStringPrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/app",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgres://u:p@db:5432/app", db.ConnectionString())

	db = config.DBConfig{Host: "h", Port: 1, User: "u", DBName: "d", SSLMode: "disable"}
	assert.Contains(t, db.ConnectionString(), "h:1/d")
}

func TestHTTPAddr(t *testing.T) {
	http := config.HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", http.Addr())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "logistica-api", cfg.App.Name)
}

func TestLoadDriverInvalido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	_, err := config.Load()
	require.Error(t, err)
}
