package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultCacheDurationMinutes     = 60
	DefaultOpenAIModel              = "gpt-4o-mini"
	DefaultOpenAIBaseURL            = "https://api.openai.com/v1/"
	DefaultOpenAIMaxTokens          = 1500
	DefaultCompletionTimeoutSeconds = 60

	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// rate limiting, 0 disables it
	AnalyzeRateLimitPerMin int `toml:"analyze_rate_limit_per_min"`

	AICoach AICoach `toml:"aicoach"`
}

type AICoach struct {
	UseDemoMode bool `toml:"use_demo_mode"`
	// zero or less disables caching
	CacheDurationMinutes     *int   `toml:"cache_duration_minutes"`
	CacheBackend             string `toml:"cache_backend"`
	MemoryCacheSizeMB        int    `toml:"memory_cache_size_mb"`
	OpenAIModel              string `toml:"openai_model"`
	OpenAIBaseURL            string `toml:"openai_base_url"`
	OpenAIMaxTokens          int    `toml:"openai_max_tokens"`
	CompletionTimeoutSeconds int    `toml:"completion_timeout_seconds"`
}

// CacheMinutes returns the configured cache duration, or the default one if not set.
func (c AICoach) CacheMinutes() int {
	if c.CacheDurationMinutes == nil {
		return DefaultCacheDurationMinutes
	}
	return *c.CacheDurationMinutes
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	var envName string
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg, envName = t.Development, "development"
	case "prod", "production":
		cfg, envName = t.Production, "production"
	case "ddev", "dockerdev":
		cfg, envName = t.DockerDev, "dockerdev"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", envName)
	}
	cfg.Environment = envName
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is like Load, but reads the TOML from the given string.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", cfg.Environment, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.AICoach.CacheBackend == "" {
		c.AICoach.CacheBackend = CacheBackendRedis
	}
	if c.AICoach.MemoryCacheSizeMB <= 0 {
		c.AICoach.MemoryCacheSizeMB = 16
	}
	if c.AICoach.OpenAIModel == "" {
		c.AICoach.OpenAIModel = DefaultOpenAIModel
	}
	if c.AICoach.OpenAIBaseURL == "" {
		c.AICoach.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	if c.AICoach.OpenAIMaxTokens <= 0 {
		c.AICoach.OpenAIMaxTokens = DefaultOpenAIMaxTokens
	}
	if c.AICoach.CompletionTimeoutSeconds <= 0 {
		c.AICoach.CompletionTimeoutSeconds = DefaultCompletionTimeoutSeconds
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port must be set"))
	}
	switch c.AICoach.CacheBackend {
	case CacheBackendRedis, CacheBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown aicoach cache backend: %s", c.AICoach.CacheBackend))
	}
	if c.AnalyzeRateLimitPerMin < 0 {
		errs = append(errs, errors.New("analyze rate limit cannot be negative"))
	}
	return errors.Join(errs...)
}
