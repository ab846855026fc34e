package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Auth:    AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: 30 * time.Minute},
		Catalog: CatalogConfig{Coins: append([]CoinEntry(nil), DefaultCatalog...)},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	cases := map[string]func(c *Config){
		"short secret":   func(c *Config) { c.Auth.JWTSecret = "short" },
		"zero ttl":       func(c *Config) { c.Auth.TokenTTL = 0 },
		"empty catalog":  func(c *Config) { c.Catalog.Coins = nil },
		"blank feed id":  func(c *Config) { c.Catalog.Coins[0].FeedID = "" },
		"duplicate name": func(c *Config) { c.Catalog.Coins[1].Name = "bitcoin" },
		"duplicate symbol": func(c *Config) {
			c.Catalog.Coins[1].Symbol = "BTC"
		},
		"duplicate feed": func(c *Config) { c.Catalog.Coins[1].FeedID = "bitcoin" },
		"telegram without token": func(c *Config) {
			c.Telegram.Enabled = true
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
auth:
  jwt_secret: "file-secret-0123456789"
catalog:
  coins:
    - { name: Bitcoin, symbol: btc, feed_id: bitcoin }
`)
	t.Setenv("HTTP_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, "file-secret-0123456789", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.CoinGecko.BaseURL)
	assert.Equal(t, []CoinEntry{{Name: "Bitcoin", Symbol: "btc", FeedID: "bitcoin"}}, cfg.Catalog.Coins)
	assert.True(t, cfg.Catalog.SeedOnStart)
	assert.False(t, cfg.Scheduler.Enabled)
}

// Каталог не задан - берётся набор по умолчанию
func TestLoad_DefaultCatalog(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "file-secret-0123456789"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Catalog.Coins, len(DefaultCatalog))
}

func TestLoad_InvalidSecret(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "short"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	c := PostgresConfig{User: "u", Password: "p", Host: "db", Port: 5432, DBName: "crypto", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/crypto?sslmode=disable", c.URL())
}
