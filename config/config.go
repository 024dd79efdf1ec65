package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URI                   string
	User                  string
	Password              string
	Host                  string
	AppName               string
	Name                  string
	MaxPoolSize           uint64
	ConnectTimeoutSeconds int
}

type AuthConfig struct {
	AccessTokenSecret string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	LanguageTTLSeconds int // 0 disables the language catalog cache
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:5173,https://assignmen-11-language-exchange.netlify.app")
	v.SetDefault("DB_HOST", "cluster0.qihkr.mongodb.net")
	v.SetDefault("DB_APP_NAME", "Cluster0")
	v.SetDefault("DB_NAME", "languageExchange")
	v.SetDefault("DB_MAX_POOL_SIZE", 100)
	v.SetDefault("DB_CONNECT_TIMEOUT_SECONDS", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("LANGUAGE_CACHE_TTL", 0)
	v.SetDefault("O11Y_BE_SERVICE_NAME", "langexchange-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "langexchange")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "langexchange-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// APP_ENV wins over NODE_ENV when both are set
	appEnv := v.GetString("NODE_ENV")
	if env := v.GetString("APP_ENV"); env != "" {
		appEnv = env
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         appEnv,
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URI:                   v.GetString("MONGODB_URI"),
			User:                  v.GetString("DB_USER"),
			Password:              v.GetString("DB_PASS"),
			Host:                  v.GetString("DB_HOST"),
			AppName:               v.GetString("DB_APP_NAME"),
			Name:                  v.GetString("DB_NAME"),
			MaxPoolSize:           v.GetUint64("DB_MAX_POOL_SIZE"),
			ConnectTimeoutSeconds: v.GetInt("DB_CONNECT_TIMEOUT_SECONDS"),
		},
		Auth: AuthConfig{
			AccessTokenSecret: v.GetString("ACCESS_TOKEN_SECRET"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			LanguageTTLSeconds: v.GetInt("LANGUAGE_CACHE_TTL"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	// Database configuration
	if c.Database.URI == "" && (c.Database.User == "" || c.Database.Password == "") {
		return fmt.Errorf("DB_USER and DB_PASS are required when MONGODB_URI is not set")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	// Token signing
	if c.Auth.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	if c.Cache.LanguageTTLSeconds < 0 {
		return fmt.Errorf("LANGUAGE_CACHE_TTL must not be negative")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// MongoURI returns the connection string, built from the Atlas credentials
// unless MONGODB_URI overrides it.
func (d DatabaseConfig) MongoURI() string {
	if d.URI != "" {
		return d.URI
	}

	u := url.URL{
		Scheme: "mongodb+srv",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host,
		Path:   "/",
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if d.AppName != "" {
		q.Set("appName", d.AppName)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode. Production
// switches the session cookie to Secure with SameSite=None.
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
