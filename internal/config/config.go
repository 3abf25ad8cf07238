package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL   = "localhost:8081"
	DefaultDBPath    = "main.sqlite3"
	DefaultSMTPFrom  = "Alerte DLC <noreply@example.com>"
	DefaultCheckDays = 7
)

// DefaultCORSOrigins is the dev server of the web front-end.
var DefaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

type Config struct {
	// Storage: SQLite file path or a postgres DSN
	DatabaseDSN string `env:"DATABASE_URI"`

	// Server-side settings
	BaseURL     string   `env:"BASE_URL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// Expiry alerts
	AlertEmail       string `env:"ALERT_EMAIL"`
	DefaultCheckDays int    `env:"DEFAULT_CHECK_DAYS" envDefault:"7"`

	// SMTP transport (only used by `check --send-email 1`)
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	SMTPFrom string `env:"SMTP_FROM"`

	Verbose bool `env:"-"` // debug logging (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

// warnOut receives configuration warnings, such as malformed env values.
var warnOut io.Writer = os.Stderr

// NewConfig loads .env, then the environment, then command-line flags.
// Flags default to the env values, so an explicit flag wins.
func NewConfig() *Config {
	_ = godotenv.Load()

	// a malformed env value leaves the field untouched, so the defaults are set up front
	cfg := &Config{DefaultCheckDays: DefaultCheckDays, SMTPPort: 587}
	if err := env.Parse(cfg); err != nil {
		fmt.Fprintf(warnOut, "config: ignoring malformed environment: %v\n", err)
	}

	corsOrigins := strings.Join(cfg.CORSOrigins, ",")

	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN: SQLite file path or postgres:// URL")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "HTTP listen address (host:port)")
	flag.StringVar(&corsOrigins, "cors-origins", corsOrigins, "comma-separated list of allowed CORS origins")
	flag.StringVar(&cfg.AlertEmail, "alert-email", cfg.AlertEmail, "default recipient of expiry alerts")
	flag.IntVar(&cfg.DefaultCheckDays, "days", cfg.DefaultCheckDays, "default expiry window in days")
	flag.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP server host")
	flag.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP server port")
	flag.StringVar(&cfg.SMTPUser, "smtp-user", cfg.SMTPUser, "SMTP user")
	flag.StringVar(&cfg.SMTPFrom, "smtp-from", cfg.SMTPFrom, "From header of alert e-mails")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose (debug) logging")

	flag.Parse()

	cfg.CORSOrigins = splitList(corsOrigins)
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = DefaultDBPath
	}
	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = DefaultBaseURL
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = append([]string(nil), DefaultCORSOrigins...)
	}
	if c.DefaultCheckDays < 0 {
		c.DefaultCheckDays = DefaultCheckDays
	}
	if c.SMTPPort <= 0 {
		c.SMTPPort = 587
	}
	if c.SMTPFrom == "" {
		c.SMTPFrom = DefaultSMTPFrom
	}
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
