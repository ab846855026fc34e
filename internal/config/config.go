package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Auth      AuthConfig      `yaml:"auth"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	HandlerTimeout  time.Duration `yaml:"handler_timeout" env-default:"3s"`
}

// SchedulerConfig - фоновая синхронизация цен. По умолчанию выключена:
// цены обновляются только через POST /update.
type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env-default:"5m"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"crypto"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start" env:"POSTGRES_MIGRATE" env-default:"true"`
}

// URL - строка подключения в формате postgres:// (нужна golang-migrate).
func (c PostgresConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type CoinGeckoConfig struct {
	BaseURL      string        `yaml:"base_url" env:"COINGECKO_URL" env-default:"https://api.coingecko.com/api/v3"`
	Currency     string        `yaml:"currency" env-default:"usd"`
	Timeout      time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent    string        `yaml:"user_agent" env-default:"crypto-tracker/1.0"`
	IncludeExtra bool          `yaml:"include_extra" env-default:"false"`
}

// CoinEntry - монета каталога: имя, символ и идентификатор во внешнем фиде.
// FeedID в БД не хранится.
type CoinEntry struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	FeedID string `yaml:"feed_id"`
}

type CatalogConfig struct {
	Coins       []CoinEntry `yaml:"coins"`
	SeedOnStart bool        `yaml:"seed_on_start" env-default:"true"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"30m"`
	Argon2    Argon2Config  `yaml:"argon2"`
}

type Argon2Config struct {
	Time    uint32 `yaml:"time" env-default:"2"`
	Memory  uint32 `yaml:"memory_kib" env-default:"19456"`
	Threads uint8  `yaml:"threads" env-default:"1"`
	KeyLen  uint32 `yaml:"key_len" env-default:"32"`
}

type TelegramConfig struct {
	Enabled         bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token           string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
}

// DefaultCatalog - набор монет, если в конфиге каталог не задан.
var DefaultCatalog = []CoinEntry{
	{Name: "Bitcoin", Symbol: "btc", FeedID: "bitcoin"},
	{Name: "Ethereum", Symbol: "eth", FeedID: "ethereum"},
	{Name: "Cardano", Symbol: "ada", FeedID: "cardano"},
	{Name: "Solana", Symbol: "sol", FeedID: "solana"},
	{Name: "Binance Coin", Symbol: "bnb", FeedID: "binancecoin"},
	{Name: "XRP", Symbol: "xrp", FeedID: "ripple"},
	{Name: "Polkadot", Symbol: "dot", FeedID: "polkadot"},
	{Name: "Dogecoin", Symbol: "doge", FeedID: "dogecoin"},
	{Name: "Avalanche", Symbol: "avax", FeedID: "avalanche-2"},
	{Name: "Chainlink", Symbol: "link", FeedID: "chainlink"},
}

const minSecretLen = 16

// LoadConfig - путь к файлу берётся из флага -c или CONFIG_PATH; без файла только env
func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load - читает YAML (если путь задан), поверх него env, затем проверяет значения
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if len(cfg.Catalog.Coins) == 0 {
		cfg.Catalog.Coins = append([]CoinEntry(nil), DefaultCatalog...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate - проверка значений, которые cleanenv проверить не может.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Auth.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minSecretLen))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if len(c.Catalog.Coins) == 0 {
		errs = append(errs, errors.New("catalog.coins is empty"))
	}

	names := make(map[string]struct{}, len(c.Catalog.Coins))
	symbols := make(map[string]struct{}, len(c.Catalog.Coins))
	feeds := make(map[string]struct{}, len(c.Catalog.Coins))
	for i, coin := range c.Catalog.Coins {
		if coin.Name == "" || coin.Symbol == "" || coin.FeedID == "" {
			errs = append(errs, fmt.Errorf("catalog.coins[%d]: name, symbol and feed_id are required", i))
			continue
		}
		if _, ok := names[strings.ToLower(coin.Name)]; ok {
			errs = append(errs, fmt.Errorf("catalog.coins[%d]: duplicate name %q", i, coin.Name))
		}
		if _, ok := symbols[strings.ToLower(coin.Symbol)]; ok {
			errs = append(errs, fmt.Errorf("catalog.coins[%d]: duplicate symbol %q", i, coin.Symbol))
		}
		if _, ok := feeds[coin.FeedID]; ok {
			errs = append(errs, fmt.Errorf("catalog.coins[%d]: duplicate feed_id %q", i, coin.FeedID))
		}
		names[strings.ToLower(coin.Name)] = struct{}{}
		symbols[strings.ToLower(coin.Symbol)] = struct{}{}
		feeds[coin.FeedID] = struct{}{}
	}

	if c.Telegram.Enabled && strings.TrimSpace(c.Telegram.Token) == "" {
		errs = append(errs, errors.New("telegram enabled but TELEGRAM_BOT_TOKEN is empty"))
	}
	return errors.Join(errs...)
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
