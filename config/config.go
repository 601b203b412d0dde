package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	API        APIConfig

	// Dashboard domains
	Planner        PlannerConfig
	Documents      DocumentsConfig
	GoogleCalendar GoogleCalendarConfig
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

// APIConfig holds cross-cutting API settings.
type APIConfig struct {
	RateLimitPerMin int
}

// PlannerConfig holds scheduling-suggestion defaults. SeedTasks and
// DefaultCapacity are presentation defaults used when a request omits
// them; they are passed into the use case, never global state.
type PlannerConfig struct {
	DefaultCapacity float64
	MaxCapacity     float64
	SeedTasks       string
	Timezone        string
	PlanCacheSize   int
	PlanCacheTTL    time.Duration
}

// DocumentsConfig holds PDF browser settings.
type DocumentsConfig struct {
	BaseDir      string
	CacheSize    int
	CacheTTL     time.Duration
	WatchEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// SeedTasks is the sample backlog shown to first-time users, one task
// per line in "name | hours | YYYY-MM-DD(optional)" form.
const SeedTasks = `Design review | 2 | 2024-07-01
Prototype API | 4 | 2024-06-25
Write documentation | 3
Team sync | 1 | 2024-06-20
QA pass | 2`

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
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
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	// Planner
	cfg.Planner.DefaultCapacity = viper.GetFloat64("planner.default_capacity")
	cfg.Planner.MaxCapacity = viper.GetFloat64("planner.max_capacity")
	cfg.Planner.SeedTasks = viper.GetString("planner.seed_tasks")
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.PlanCacheSize = viper.GetInt("planner.plan_cache_size")
	cfg.Planner.PlanCacheTTL = viper.GetDuration("planner.plan_cache_ttl")
	if cfg.Planner.DefaultCapacity <= 0 {
		return nil, fmt.Errorf("planner.default_capacity must be positive, got %v", cfg.Planner.DefaultCapacity)
	}

	// Documents
	cfg.Documents.BaseDir = viper.GetString("documents.base_dir")
	cfg.Documents.CacheSize = viper.GetInt("documents.cache_size")
	cfg.Documents.CacheTTL = viper.GetDuration("documents.cache_ttl")
	cfg.Documents.WatchEnabled = viper.GetBool("documents.watch_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("api.rate_limit_per_min", 120)

	// Planner defaults mirror the classic dashboard: 6h days, capacity
	// slider bounded at 12.
	viper.SetDefault("planner.default_capacity", 6.0)
	viper.SetDefault("planner.max_capacity", 12.0)
	viper.SetDefault("planner.seed_tasks", SeedTasks)
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.plan_cache_size", 256)
	viper.SetDefault("planner.plan_cache_ttl", time.Hour)

	viper.SetDefault("documents.base_dir", ".")
	viper.SetDefault("documents.cache_size", 64)
	viper.SetDefault("documents.cache_ttl", 5*time.Minute)
	viper.SetDefault("documents.watch_enabled", true)
}
