// Package config reads merchhub settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/merchhub/internal/checkout"
	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/session"
	"github.com/nikolayk812/merchhub/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const envPrefix = "MERCHHUB_"

const (
	defaultHTTPAddr         = ":8080"
	defaultCurrency         = "PHP"
	defaultDeliveryFee      = "10"
	defaultTimezone         = "Asia/Manila"
	defaultLocale           = "en-PH"
	defaultImagePlaceholder = "/placeholder.png"
	defaultShutdownTimeout  = 10 * time.Second
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string

	Currency          currency.Unit
	DeliveryFee       decimal.Decimal
	DeliveryLocations []string
	DeliveryTimes     []string
	Timezone          *time.Location
	ImagePlaceholder  string
	Language          language.Tag

	StorageKey       string
	SessionCacheSize int
	ShutdownTimeout  time.Duration

	LogLevel       zapcore.Level
	LogDevelopment bool
	GinMode        string
}

// Load reads envFile into the process environment when it exists, then
// builds a Config from MERCHHUB_* variables.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load: %w", err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for every variable.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	cfg := Config{
		HTTPAddr:          r.str("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:       r.str("DATABASE_URL", ""),
		JWTSecret:         r.str("JWT_SECRET", ""),
		DeliveryLocations: r.list("DELIVERY_LOCATIONS", checkout.DefaultDeliveryLocations),
		DeliveryTimes:     r.list("DELIVERY_TIMES", checkout.DefaultDeliveryTimes),
		ImagePlaceholder:  r.str("IMAGE_PLACEHOLDER", defaultImagePlaceholder),
		StorageKey:        r.str("STORAGE_KEY", storage.DefaultKey),
		GinMode:           r.str("GIN_MODE", ""),
	}

	var err error

	if cfg.Currency, err = currency.ParseISO(r.str("CURRENCY", defaultCurrency)); err != nil {
		return Config{}, fmt.Errorf("%sCURRENCY: %w", envPrefix, err)
	}

	if cfg.DeliveryFee, err = decimal.NewFromString(r.str("DELIVERY_FEE", defaultDeliveryFee)); err != nil {
		return Config{}, fmt.Errorf("%sDELIVERY_FEE: %w", envPrefix, err)
	}
	if cfg.DeliveryFee.IsNegative() {
		return Config{}, fmt.Errorf("%sDELIVERY_FEE: %w", envPrefix, checkout.ErrNegativeDeliveryFee)
	}

	if cfg.Timezone, err = time.LoadLocation(r.str("TIMEZONE", defaultTimezone)); err != nil {
		return Config{}, fmt.Errorf("%sTIMEZONE: %w", envPrefix, err)
	}

	if cfg.Language, err = language.Parse(r.str("LOCALE", defaultLocale)); err != nil {
		return Config{}, fmt.Errorf("%sLOCALE: %w", envPrefix, err)
	}

	if cfg.SessionCacheSize, err = strconv.Atoi(r.str("SESSION_CACHE_SIZE", strconv.Itoa(session.DefaultCacheSize))); err != nil {
		return Config{}, fmt.Errorf("%sSESSION_CACHE_SIZE: %w", envPrefix, err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(r.str("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())); err != nil {
		return Config{}, fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
	}

	if cfg.LogLevel, err = zapcore.ParseLevel(r.str("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
	}

	if cfg.LogDevelopment, err = strconv.ParseBool(r.str("LOG_DEVELOPMENT", "false")); err != nil {
		return Config{}, fmt.Errorf("%sLOG_DEVELOPMENT: %w", envPrefix, err)
	}

	return cfg, nil
}

// Logger builds the process logger.
func (c Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("zc.Build: %w", err)
	}

	return logger, nil
}

// PoolConfig builds the pgxpool configuration for DatabaseURL.
func (c Config) PoolConfig() (*pgxpool.Config, error) {
	const defaultMaxConnections = int32(8)
	const defaultMinConnections = int32(1)
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5
	const defaultHealthCheckPeriod = time.Minute
	const defaultConnectTimeout = time.Second * 5

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	dbConfig, err := pgxpool.ParseConfig(c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// FlowOptions translates the checkout settings into checkout options.
func (c Config) FlowOptions() []checkout.Option {
	return []checkout.Option{
		checkout.WithDeliveryFee(domain.NewMoney(c.DeliveryFee, c.Currency)),
		checkout.WithDeliveryLocations(c.DeliveryLocations),
		checkout.WithDeliveryTimes(c.DeliveryTimes),
		checkout.WithTimezone(c.Timezone),
	}
}

type reader struct {
	lookup func(string) (string, bool)
}

func (r reader) str(name, def string) string {
	v, ok := r.lookup(envPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

// list splits a comma separated value, dropping blank entries.
func (r reader) list(name string, def []string) []string {
	raw := r.str(name, "")
	if raw == "" {
		return append([]string(nil), def...)
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
