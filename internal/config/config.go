// Package config manages environment variables.
//
// It reads variables from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (observability, inventory).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every env var read by the application carries.
//
// Keys are lowercased and stripped of the prefix; nesting uses ".":
//
//	INVENTORY_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "INVENTORY_"

// ServiceName labels logs, traces and metrics emitted by this service.
const ServiceName = "inventory"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator.
//
// Observability and Inventory are pointers because they are optional.
// If not provided, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Inventory     *InventoryConfig     `koanf:"inventory"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres URL for this config.
//
// The password is query-escaped so characters like '@' or ':' don't break
// the URL, and JoinHostPort adds brackets around IPv6 hosts.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets (Clerk secret key).
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig holds credentials for third-party integrations.
//
// Both values are optional: without a Resend key, stock alert emails are
// logged and dropped; without a recipient, no alert is enqueued.
type IntegrationConfig struct {
	ResendAPIKey     string `koanf:"resend_api_key"`
	StockAlertEmail  string `koanf:"stock_alert_email" validate:"omitempty,email"`
	StockAlertSender string `koanf:"stock_alert_sender"`
}

// InventoryConfig tunes the products domain.
type InventoryConfig struct {
	// LowStockThreshold is the quantity at or below which a product
	// triggers a stock alert job.
	LowStockThreshold int `koanf:"low_stock_threshold" validate:"min=0"`

	// LookupCacheTTL is how long category/area lookups stay in Redis.
	LookupCacheTTL time.Duration `koanf:"lookup_cache_ttl" validate:"min=0"`

	// RateLimit is the number of requests per second allowed per client IP
	// on the API routes. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`

	// RateLimitBurst is the maximum burst size for the rate limiter.
	RateLimitBurst int `koanf:"rate_limit_burst" validate:"min=0"`

	// DefaultPageSize is used when list requests omit ?limit.
	DefaultPageSize int `koanf:"default_page_size" validate:"min=1,max=100"`
}

// DefaultInventoryConfig provides the defaults used when no inventory block is set.
func DefaultInventoryConfig() *InventoryConfig {
	return &InventoryConfig{
		LowStockThreshold: 5,
		LookupCacheTTL:    5 * time.Minute,
		RateLimit:         20,
		RateLimitBurst:    40,
		DefaultPageSize:   20,
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix INVENTORY_
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default inventory and observability blocks if missing
//   - Overrides observability service name + environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Inventory defaults are seeded before unmarshalling so a partial
	// inventory block only overrides the keys it sets.
	mainConfig := &Config{
		Inventory: DefaultInventoryConfig(),
	}

	// "" means unmarshal everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so tracing/logging sees
	// consistent naming regardless of what was set.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
