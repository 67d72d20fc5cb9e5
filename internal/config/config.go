package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	App      AppConfig
	Model    ModelConfig
	Database DatabaseConfig
	Cache    CacheConfig
}

type AppConfig struct {
	AppName     string `validate:"required"`
	Environment string `validate:"required"`
	HTTPPort    string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
}

const (
	ModelSourceFile     = "file"
	ModelSourcePostgres = "postgres"
)

// ModelConfig locates the trained artifacts. Empty file paths are allowed: the
// server then starts without models and reports them unavailable.
type ModelConfig struct {
	Source     string `validate:"oneof=file postgres"`
	ModelPath  string
	ScalerPath string
	ModelName  string `validate:"required_if=Source postgres"`
	ScalerName string `validate:"required_if=Source postgres"`
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration `validate:"gt=0"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

var validate = validator.New()

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "salary-predictor"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
		LogLevel:    strings.ToLower(opt("LOG_LEVEL", "info")),
	}

	cfg.Model = ModelConfig{
		Source:     strings.ToLower(opt("MODEL_SOURCE", ModelSourceFile)),
		ModelPath:  opt("MODEL_PATH", ""),
		ScalerPath: opt("SCALER_PATH", ""),
		ModelName:  opt("MODEL_NAME", "salary_predictor"),
		ScalerName: opt("SCALER_NAME", "scaler"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", "localhost"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   4,
	}
	if cfg.Model.Source == ModelSourcePostgres {
		cfg.Database.DBName = req("DB_NAME")
		cfg.Database.DBUser = req("DB_USER")
	}

	cfg.Cache = CacheConfig{
		Enabled:  optBool("CACHE_ENABLED", false),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidEnv, err)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func (c CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
