// Package config loads storefront settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the storefront process. All values come from
// STOREFRONT_* environment variables with workable defaults for local runs.
type Config struct {
	Env  string `env:"STOREFRONT_ENV" envDefault:"development"`
	Addr string `env:"STOREFRONT_ADDR" envDefault:":8080"`

	// BaseURL is the public origin used for canonical links and structured
	// data. Empty disables absolute URLs.
	BaseURL string `env:"STOREFRONT_BASE_URL"`

	// APIBaseURL points at the catalog API. Empty runs the storefront
	// entirely off the bundled product set.
	APIBaseURL string `env:"STOREFRONT_API_BASE_URL"`

	// RedisAddr enables the shared snapshot store. Empty keeps snapshots
	// in process memory.
	RedisAddr     string        `env:"STOREFRONT_REDIS_ADDR"`
	RedisPassword string        `env:"STOREFRONT_REDIS_PASSWORD"`
	SnapshotTTL   time.Duration `env:"STOREFRONT_SNAPSHOT_TTL" envDefault:"5m"`

	// ContentAPIURL points at a remote content service for policy and about
	// pages. Empty serves the bundled markdown only.
	ContentAPIURL string `env:"STOREFRONT_CONTENT_API_URL"`

	TemplatesDir string `env:"STOREFRONT_TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"STOREFRONT_PUBLIC_DIR" envDefault:"public"`
	LocalesDir   string `env:"STOREFRONT_LOCALES_DIR" envDefault:"locales"`
	ContentDir   string `env:"STOREFRONT_CONTENT_DIR" envDefault:"content"`
	ProductsFile string `env:"STOREFRONT_PRODUCTS_FILE" envDefault:"data/products.json"`

	DefaultLocale string `env:"STOREFRONT_DEFAULT_LOCALE" envDefault:"ar"`

	// SessionKey signs session cookies. The generated fallback only suits
	// single-process development runs.
	SessionKey string `env:"STOREFRONT_SESSION_KEY"`

	AnalyticsID string `env:"STOREFRONT_ANALYTICS_ID"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DevMode reports whether the process runs with development conveniences
// such as template reparsing per request.
func (c Config) DevMode() bool {
	return c.Env != "production"
}
