package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Collaborators
	Postgres PostgresConfig
	Jira     JiraConfig

	// Parsing
	Parser ParserConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
	Migrate  bool
}

type JiraConfig struct {
	BaseURL           string
	Email             string
	APIToken          string
	Timeout           time.Duration
	MaxResults        int
	ClosedStatus      string
	RequestsPerSecond float64
	SearchCacheTTL    time.Duration
	SearchCacheSize   int
}

type ParserConfig struct {
	Timezone       string
	DictionaryPath string
	// LegacyDates turns on spoken date phrases such as "ontem".
	LegacyDates bool
}

// Load loads configuration using Viper.
// A .env file, when present, is loaded into the environment first.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	// Jira
	cfg.Jira.BaseURL = viper.GetString("jira.base_url")
	cfg.Jira.Email = viper.GetString("jira.email")
	cfg.Jira.APIToken = viper.GetString("jira.api_token")
	cfg.Jira.Timeout = viper.GetDuration("jira.timeout")
	cfg.Jira.MaxResults = viper.GetInt("jira.max_results")
	cfg.Jira.ClosedStatus = viper.GetString("jira.closed_status")
	cfg.Jira.RequestsPerSecond = viper.GetFloat64("jira.requests_per_second")
	cfg.Jira.SearchCacheTTL = viper.GetDuration("jira.search_cache_ttl")
	cfg.Jira.SearchCacheSize = viper.GetInt("jira.search_cache_size")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DictionaryPath = viper.GetString("parser.dictionary_path")
	cfg.Parser.LegacyDates = viper.GetBool("parser.legacy_dates")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if _, err := time.LoadLocation(cfg.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone %q: %w", cfg.Parser.Timezone, err)
	}
	if cfg.Jira.BaseURL != "" && (cfg.Jira.Email == "" || cfg.Jira.APIToken == "") {
		return fmt.Errorf("jira.email and jira.api_token are required when jira.base_url is set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.migrate", true)

	viper.SetDefault("jira.timeout", "25s")
	viper.SetDefault("jira.max_results", 50)
	viper.SetDefault("jira.closed_status", "Concluído")
	viper.SetDefault("jira.requests_per_second", 5)
	viper.SetDefault("jira.search_cache_ttl", "30s")
	viper.SetDefault("jira.search_cache_size", 256)

	viper.SetDefault("parser.timezone", "America/Sao_Paulo")
	viper.SetDefault("parser.legacy_dates", false)
}
