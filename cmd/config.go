package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string `mapstructure:"HTTP_PORT" validate:"required,numeric"`
	DBHost     string `mapstructure:"DB_HOST" validate:"required"`
	DBPort     string `mapstructure:"DB_PORT" validate:"required,numeric"`
	DBUser     string `mapstructure:"DB_USER" validate:"required"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME" validate:"required"`
	DBSslMode  string `mapstructure:"DB_SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBDriver   string `mapstructure:"DB_DRIVER" validate:"oneof=pgx pq"`

	OrderIDMaxAttempts  int           `mapstructure:"ORDER_ID_MAX_ATTEMPTS" validate:"min=1,max=10"`
	OrderIDRetryBackoff time.Duration `mapstructure:"ORDER_ID_RETRY_BACKOFF" validate:"gte=0"`
	ExpenseBulkAtomic   bool          `mapstructure:"EXPENSE_BULK_ATOMIC"`
	SalaryPerLoad       string        `mapstructure:"SALARY_PER_LOAD" validate:"required,numeric"`

	CacheBackend   string        `mapstructure:"CACHE_BACKEND" validate:"oneof=memory redis"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR" validate:"required_if=CacheBackend redis"`
	ReportCacheTTL time.Duration `mapstructure:"REPORT_CACHE_TTL" validate:"gte=0"`

	JobsEnabled bool   `mapstructure:"JOBS_ENABLED"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

var defaults = map[string]any{
	"HTTP_PORT":              "8080",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "",
	"DB_NAME":                "laundry",
	"DB_SSLMODE":             "disable",
	"DB_DRIVER":              "pgx",
	"ORDER_ID_MAX_ATTEMPTS":  2,
	"ORDER_ID_RETRY_BACKOFF": "0s",
	"EXPENSE_BULK_ATOMIC":    true,
	"SALARY_PER_LOAD":        "50.00",
	"CACHE_BACKEND":          "memory",
	"REDIS_ADDR":             "",
	"REPORT_CACHE_TTL":       "5m",
	"JOBS_ENABLED":           true,
	"LOG_LEVEL":              "info",
}

// LoadConfig reads envFile when it exists, then the process environment,
// which wins over the file. Unset keys fall back to their defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSslMode,
	)
}

func (c Config) RetryPolicy() commands.RetryPolicy {
	return commands.RetryPolicy{
		MaxAttempts: c.OrderIDMaxAttempts,
		Backoff:     c.OrderIDRetryBackoff,
	}
}

func (c Config) SalaryRate() (kernel.Money, error) {
	return kernel.ParseMoney(c.SalaryPerLoad)
}
