// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compilance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - Optional YAML file for the product catalog and calculator defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

// EnvPrefix is the prefix for every environment variable (RESIN_SERVER_PORT, ...).
const EnvPrefix = "RESIN"

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Metrics contains Prometheus exposition configuration
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Calculator contains defaults for resin calculations
	Calculator CalculatorConfig `mapstructure:"calculator"`

	// Catalog lists the products that can be recommended
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout is the maximum duration of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximun allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`
}

// RateLimitConfig contains per-client rate limiting configuration.
type RateLimitConfig struct {
	// Enabled toggles the rate limiter
	Enabled bool `mapstructure:"enabled"`

	// RequestsPerSecond is the sustained rate per client
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Burst is the maximum burst size per client
	Burst int `mapstructure:"burst"`
}

// MetricsConfig contains Prometheus exposition configuration.
type MetricsConfig struct {
	// Enabled exposes the metrics endpoint
	Enabled bool `mapstructure:"enabled"`

	// Path is the route of the metrics endpoint
	Path string `mapstructure:"path"`

	// Namespace prefixes every metric name
	Namespace string `mapstructure:"namespace"`
}

// CalculatorConfig contains defaults for resin calculations.
type CalculatorConfig struct {
	// MarginRate is the fraction added to the raw volume (0.05 = 5%)
	MarginRate float64 `mapstructure:"margin_rate"`

	// DefaultMixRatio is the Part A:Part B ratio used when a request omits it
	DefaultMixRatio string `mapstructure:"default_mix_ratio"`
}

// CatalogConfig lists the products that can be recommended.
type CatalogConfig struct {
	// Products is the ordered product list
	Products []ProductConfig `mapstructure:"products"`
}

// ProductConfig describes one catalog product.
type ProductConfig struct {
	SKU         string `mapstructure:"sku"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Category    string `mapstructure:"category"`
	URL         string `mapstructure:"url"`
	Price       string `mapstructure:"price"`
	Currency    string `mapstructure:"currency"`
	BestSeller  bool   `mapstructure:"best_seller"`
}

// Configuration errors.
var (
	ErrInvalidPort     = errors.New("server port must be between 1 and 65535")
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error")
)

// Load loads the configuration from environment variables and config files.
// It follows this precedence (higest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching the default locations. An empty path searches the defaults.
//
// Parameters:
//   - path: explicit config file path, or ""
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading or validation
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/resin-calc")
	}

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default search may find nothing
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "resin-calc")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1<<20)             // 1MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"}) // Allow all origins by default

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "resin_calc")

	// Calculator defaults
	v.SetDefault("calculator.margin_rate", valueobject.DefaultMarginRate)
	v.SetDefault("calculator.default_mix_ratio", valueobject.OneToOne.String())

	// Catalog defaults
	v.SetDefault("catalog.products", defaultProducts())
}

// defaultProducts is the catalog shipped with the service.
func defaultProducts() []map[string]any {
	return []map[string]any{
		{
			"sku":         "promise-deep-pour",
			"name":        "Promise Deep Pour Resin",
			"description": "Slow-curing epoxy for castings thicker than 1 inch.",
			"category":    string(valueobject.CategoryDeepPour),
			"url":         "https://amzn.to/4im5zpe",
			"best_seller": true,
		},
		{
			"sku":         "promise-table-top",
			"name":        "Promise Table Top Epoxy",
			"description": "Self-leveling coating for thin coats and coasters.",
			"category":    string(valueobject.CategoryStandard),
			"url":         "https://amzn.to/4ox0oo8",
		},
		{
			"sku":         "mixing-kit",
			"name":        "Mixing Kit",
			"description": "Graduated cups and stir sticks.",
			"category":    string(valueobject.CategoryAccessory),
			"url":         "https://amzn.to/44gz9a7",
			"price":       "15.00",
			"currency":    string(valueobject.CurrencyUSD),
		},
	}
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	// These are explicity bound for clarity
	_ = v.BindEnv("app.environment", EnvPrefix+"_ENVIRONMENT")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT") // PORT is a common convention
}

// Validate checks values that would otherwise fail later at request time.
//
// Returns:
//   - error: the first invalid setting found
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w, got %d", ErrInvalidPort, c.Server.Port)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if _, err := c.Calculator.Margin(); err != nil {
		return err
	}
	if _, err := c.Calculator.MixRatio(); err != nil {
		return err
	}
	return nil
}

// Margin returns the configured margin as a validated value object.
func (c CalculatorConfig) Margin() (valueobject.MarginRate, error) {
	return valueobject.NewMarginRate(c.MarginRate)
}

// MixRatio returns the configured default mix ratio.
func (c CalculatorConfig) MixRatio() (valueobject.MixRatio, error) {
	return valueobject.ParseMixRatio(c.DefaultMixRatio)
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Address returns the host:port the HTTP server binds to.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
