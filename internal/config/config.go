package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type Config struct {
	HTTPAddr string
	GRPCAddr string

	Store                string
	MySQLDSN             string
	MySQLMaxOpenConns    int
	MySQLMaxIdleConns    int
	MySQLConnMaxLifetime time.Duration

	// RedisAddr enables the request-id guard on order creation. Empty
	// disables it.
	RedisAddr      string
	IdempotencyTTL time.Duration

	LogLevel        string
	TxTimeout       time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, falling back to
// defaults for unset variables.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:  getEnv("GRPC_ADDR", ":50051"),
		Store:     getEnv("STORE", StoreMySQL),
		MySQLDSN:  getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/stockledger?parseTime=true"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
	cfg.MySQLMaxOpenConns = getInt("MYSQL_MAX_OPEN_CONNS", 50, &errs)
	cfg.MySQLMaxIdleConns = getInt("MYSQL_MAX_IDLE_CONNS", 25, &errs)
	cfg.MySQLConnMaxLifetime = getDuration("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute, &errs)
	cfg.IdempotencyTTL = getDuration("IDEMPOTENCY_TTL", 24*time.Hour, &errs)
	cfg.TxTimeout = getDuration("TX_TIMEOUT", 5*time.Second, &errs)
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs)

	if cfg.Store == StoreMySQL && cfg.MySQLDSN != "" {
		dsn, err := normalizeDSN(cfg.MySQLDSN)
		if err != nil {
			errs = append(errs, fmt.Errorf("MYSQL_DSN: %w", err))
		}
		cfg.MySQLDSN = dsn
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store {
	case StoreMySQL:
		if c.MySQLDSN == "" {
			errs = append(errs, errors.New("MYSQL_DSN is required when STORE=mysql"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StoreMySQL, StoreMemory, c.Store))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("GRPC_ADDR must not be empty"))
	}
	if c.MySQLMaxOpenConns <= 0 {
		errs = append(errs, errors.New("MYSQL_MAX_OPEN_CONNS must be positive"))
	}
	if c.MySQLMaxIdleConns < 0 || c.MySQLMaxIdleConns > c.MySQLMaxOpenConns {
		errs = append(errs, errors.New("MYSQL_MAX_IDLE_CONNS must be between 0 and MYSQL_MAX_OPEN_CONNS"))
	}
	if c.IdempotencyTTL <= 0 {
		errs = append(errs, errors.New("IDEMPOTENCY_TTL must be positive"))
	}
	if c.TxTimeout <= 0 {
		errs = append(errs, errors.New("TX_TIMEOUT must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// normalizeDSN forces parseTime, which every timestamp scan relies on.
func normalizeDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	c.ParseTime = true
	return c.FormatDSN(), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
