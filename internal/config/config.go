package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Env      string
	HTTPPort string

	DBDriver    string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string
	DatabaseURL string // overrides the DB_* parts when set
	SQLitePath  string
	Migrate     bool

	RateRPS     int
	CORSOrigins []string
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:      get("APP_ENV", "dev"),
		HTTPPort: get("PORT", "3001"),

		DBDriver:    strings.ToLower(get("DB_DRIVER", DriverPostgres)),
		DBHost:      get("DB_HOST", "localhost"),
		DBUser:      get("DB_USER", "postgres"),
		DBPassword:  get("DB_PASSWORD", ""),
		DBName:      get("DB_NAME", "expense_tracker"),
		DBPort:      get("DB_PORT", "5432"),
		DBSSLMode:   get("DB_SSLMODE", "disable"),
		DatabaseURL: get("DATABASE_URL", ""),
		SQLitePath:  get("SQLITE_PATH", "./data/expenses.db"),
		Migrate:     getBool("APP_MIGRATE", true),

		RateRPS:     getInt("RATE_RPS", 100),
		CORSOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
	}
	return cfg
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if err := checkPort("PORT", c.HTTPPort); err != nil {
		errs = append(errs, err)
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			if c.DBHost == "" {
				errs = append(errs, errors.New("DB_HOST must not be empty"))
			}
			if c.DBName == "" {
				errs = append(errs, errors.New("DB_NAME must not be empty"))
			}
			if err := checkPort("DB_PORT", c.DBPort); err != nil {
				errs = append(errs, err)
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must not be empty when DB_DRIVER=sqlite"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("invalid DB_DRIVER %q: must be one of postgres, sqlite, memory", c.DBDriver))
	}
	if c.RateRPS < 0 {
		errs = append(errs, fmt.Errorf("invalid RATE_RPS %d: must be >= 0", c.RateRPS))
	}
	return errors.Join(errs...)
}

// PostgresURL is DATABASE_URL, or a URL assembled from the DB_* parts.
func (c Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	if c.DBPassword == "" {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

// MigrationURL is the database URL in the form golang-migrate expects for
// the configured driver. It is empty for the memory driver.
func (c Config) MigrationURL() string {
	switch c.DBDriver {
	case DriverPostgres:
		pg := c.PostgresURL()
		if i := strings.Index(pg, "://"); i >= 0 {
			return "pgx5" + pg[i:]
		}
		return pg
	case DriverSQLite:
		return "sqlite://" + c.SQLitePath
	}
	return ""
}

func checkPort(name, v string) error {
	p, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: must be a number", name, v)
	}
	if p < 1 || p > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", name, p)
	}
	return nil
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func getBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
