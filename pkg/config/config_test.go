package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Accounts.FetchDelay)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("ACCOUNTS_FETCH_DELAY", "2s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "secreto")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 2*time.Second, cfg.Accounts.FetchDelay)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Auth.Enabled)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "sqlite")
	_, err := fromViper(v)
	assert.ErrorContains(t, err, "STORE_DRIVER")

	v = viper.New()
	v.Set("AUTH_ENABLED", true)
	_, err = fromViper(v)
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "beneficios", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/beneficios?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
