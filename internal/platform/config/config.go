package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/SscSPs/budget_tracker/internal/core/aggregation"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const insecureDefaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Bearer tokens are issued by the identity provider; the service only verifies them.
	JWTSecret   string
	JWTIssuer   string // optional, checked when set
	JWTAudience string // optional, checked when set

	// Reporting
	DefaultBudgetCeiling decimal.Decimal
	AdvisoryThreshold    decimal.Decimal
	ReportLocation       *time.Location
	WeekStart            time.Weekday
	SeriesDays           int
	StrictCategories     bool

	// Messaging, disabled when AMQPURL is empty
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	RateLimit          string // limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", insecureDefaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("JWT_AUDIENCE", "")
	v.SetDefault("DEFAULT_BUDGET_CEILING", "20000")
	v.SetDefault("ADVISORY_THRESHOLD", "50")
	v.SetDefault("REPORT_TIMEZONE", "UTC")
	v.SetDefault("WEEK_START", "sunday")
	v.SetDefault("SERIES_DAYS", 7)
	v.SetDefault("STRICT_CATEGORIES", false)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "budget.transactions")
	v.SetDefault("AMQP_ROUTING_KEY", "transactions")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		JWTAudience:      v.GetString("JWT_AUDIENCE"),
		SeriesDays:       v.GetInt("SERIES_DAYS"),
		StrictCategories: v.GetBool("STRICT_CATEGORIES"),
		AMQPURL:          v.GetString("AMQP_URL"),
		AMQPExchange:     v.GetString("AMQP_EXCHANGE"),
		AMQPRoutingKey:   v.GetString("AMQP_ROUTING_KEY"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set. Using default.", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == insecureDefaultJWTSecret {
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.DefaultBudgetCeiling, err = decimal.NewFromString(v.GetString("DEFAULT_BUDGET_CEILING")); err != nil {
		return nil, fmt.Errorf("%w: DEFAULT_BUDGET_CEILING: %v", apperrors.ErrInvalidConfig, err)
	}
	if cfg.AdvisoryThreshold, err = decimal.NewFromString(v.GetString("ADVISORY_THRESHOLD")); err != nil {
		return nil, fmt.Errorf("%w: ADVISORY_THRESHOLD: %v", apperrors.ErrInvalidConfig, err)
	}
	if cfg.ReportLocation, err = time.LoadLocation(v.GetString("REPORT_TIMEZONE")); err != nil {
		return nil, fmt.Errorf("%w: REPORT_TIMEZONE: %v", apperrors.ErrInvalidConfig, err)
	}
	if cfg.WeekStart, err = ParseWeekday(v.GetString("WEEK_START")); err != nil {
		return nil, err
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !c.DefaultBudgetCeiling.IsPositive() {
		return fmt.Errorf("%w: DEFAULT_BUDGET_CEILING must be positive", apperrors.ErrInvalidConfig)
	}
	if c.AdvisoryThreshold.IsNegative() {
		return fmt.Errorf("%w: ADVISORY_THRESHOLD must not be negative", apperrors.ErrInvalidConfig)
	}
	if c.SeriesDays < 1 {
		return fmt.Errorf("%w: SERIES_DAYS must be at least 1", apperrors.ErrInvalidConfig)
	}
	if c.SeriesDays > aggregation.MaxSeriesDays {
		return fmt.Errorf("%w: SERIES_DAYS must be at most %d", apperrors.ErrInvalidConfig, aggregation.MaxSeriesDays)
	}
	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		return fmt.Errorf("%w: WEEK_START out of range", apperrors.ErrInvalidConfig)
	}
	if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
		return fmt.Errorf("%w: RATE_LIMIT: %v", apperrors.ErrInvalidConfig, err)
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("%w: CORS_ALLOWED_ORIGINS needs at least one origin", apperrors.ErrInvalidConfig)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", apperrors.ErrInvalidConfig)
	}
	if c.IsProduction && c.JWTSecret == insecureDefaultJWTSecret {
		return fmt.Errorf("%w: JWT_SECRET must be set in production", apperrors.ErrInvalidConfig)
	}
	return nil
}

// ParseWeekday accepts full or three letter English day names, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: unknown week day %q", apperrors.ErrInvalidConfig, s)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
