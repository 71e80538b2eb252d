package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default values.
const (
	DefaultDataURL      = "https://raw.githubusercontent.com/ArnaudBon20/FinancementCampagne/main/data.json"
	DefaultFetchTimeout = 10 * time.Second
	DefaultHTTPAddr     = ":8080"
	DefaultLogLevel     = "info"
	DefaultEFKAPIURL    = "https://politikfinanzierung.efk.admin.ch/api/frontend/v1"

	MinFetchTimeout = time.Second
	MaxFetchTimeout = 60 * time.Second
)

type Config struct {
	DataURL           string        `toml:"data_url"`
	FetchTimeout      time.Duration `toml:"-"`
	CachePath         string        `toml:"cache_path"`
	DatabaseURL       string        `toml:"database_url"`
	DiscordWebhookURL string        `toml:"discord_webhook_url"`
	HTTPAddr          string        `toml:"http_addr"`
	LogLevel          string        `toml:"log_level"`
	EFKAPIURL         string        `toml:"efk_api_url"`

	// Raw value, parsed by validate.
	FetchTimeoutRaw string `toml:"fetch_timeout"`
}

// envKeys maps each environment variable to the field it sets.
func (c *Config) envKeys() map[string]*string {
	return map[string]*string{
		"DATA_URL":            &c.DataURL,
		"FETCH_TIMEOUT":       &c.FetchTimeoutRaw,
		"CACHE_PATH":          &c.CachePath,
		"DATABASE_URL":        &c.DatabaseURL,
		"DISCORD_WEBHOOK_URL": &c.DiscordWebhookURL,
		"HTTP_ADDR":           &c.HTTPAddr,
		"LOG_LEVEL":           &c.LogLevel,
		"EFK_API_URL":         &c.EFKAPIURL,
	}
}

// Load charge la configuration depuis le fichier CONFIG_FILE (optionnel) puis
// les variables d'environnement, et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	for key, field := range cfg.envKeys() {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*field = strings.TrimSpace(v)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: lecture de %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config: %s invalide: %w", path, err)
	}
	return nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DataURL) == "" {
		c.DataURL = DefaultDataURL
	}
	if err := validateHTTPURL("DATA_URL", c.DataURL); err != nil {
		return err
	}

	c.FetchTimeout = DefaultFetchTimeout
	if c.FetchTimeoutRaw != "" {
		d, err := time.ParseDuration(c.FetchTimeoutRaw)
		if err != nil {
			return fmt.Errorf("config: FETCH_TIMEOUT invalide (%q): %w", c.FetchTimeoutRaw, err)
		}
		c.FetchTimeout = d
	}
	if c.FetchTimeout < MinFetchTimeout || c.FetchTimeout > MaxFetchTimeout {
		return fmt.Errorf("config: FETCH_TIMEOUT doit être compris entre %s et %s", MinFetchTimeout, MaxFetchTimeout)
	}

	if strings.TrimSpace(c.CachePath) == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		c.CachePath = filepath.Join(dir, "financement", "data.json")
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	}

	if c.DiscordWebhookURL != "" {
		if err := validateHTTPURL("DISCORD_WEBHOOK_URL", c.DiscordWebhookURL); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}

	switch strings.ToLower(c.LogLevel) {
	case "":
		c.LogLevel = DefaultLogLevel
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		return fmt.Errorf("config: LOG_LEVEL invalide (%q): attendu debug, info, warn ou error", c.LogLevel)
	}

	if strings.TrimSpace(c.EFKAPIURL) == "" {
		c.EFKAPIURL = DefaultEFKAPIURL
	}
	c.EFKAPIURL = strings.TrimRight(c.EFKAPIURL, "/")
	return validateHTTPURL("EFK_API_URL", c.EFKAPIURL)
}

func validateHTTPURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: %s invalide (%q): URL http(s) absolue attendue", name, raw)
	}
	return nil
}
