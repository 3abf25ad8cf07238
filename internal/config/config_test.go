package config

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
	oldArgs := os.Args
	os.Args = append([]string{oldArgs[0]}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "BASE_URL", "CORS_ORIGINS", "ALERT_EMAIL", "DEFAULT_CHECK_DAYS",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, DefaultDBPath, cfg.DatabaseDSN)
	assert.Equal(t, "localhost:8081", cfg.BaseURL)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 7, cfg.DefaultCheckDays)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, DefaultSMTPFrom, cfg.SMTPFrom)
	assert.Empty(t, cfg.AlertEmail)
	assert.False(t, cfg.Verbose)
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URI", "postgres://u:p@db:5432/stock")
	t.Setenv("BASE_URL", "0.0.0.0:9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ALERT_EMAIL", "me@example.com")
	t.Setenv("DEFAULT_CHECK_DAYS", "3")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "secret")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "postgres://u:p@db:5432/stock", cfg.DatabaseDSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "me@example.com", cfg.AlertEmail)
	assert.Equal(t, 3, cfg.DefaultCheckDays)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "user", cfg.SMTPUser)
	assert.Equal(t, "secret", cfg.SMTPPass)
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URI", "env.sqlite3")
	t.Setenv("DEFAULT_CHECK_DAYS", "3")

	resetFlagSet(t, "-d", "flag.sqlite3", "-days", "10", "-v", "list")
	cfg := NewConfig()

	assert.Equal(t, "flag.sqlite3", cfg.DatabaseDSN)
	assert.Equal(t, 10, cfg.DefaultCheckDays)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"list"}, flag.Args())
}

func TestNewConfig_InvalidValuesFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t, "-days", "-1")
	cfg := NewConfig()

	assert.Equal(t, "localhost:8081", cfg.BaseURL)
	assert.Equal(t, DefaultCheckDays, cfg.DefaultCheckDays)
}

func TestNewConfig_MalformedEnvIsReported(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEFAULT_CHECK_DAYS", "abc")
	t.Setenv("SMTP_PORT", "x")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	var warnings bytes.Buffer
	prev := warnOut
	warnOut = &warnings
	t.Cleanup(func() { warnOut = prev })

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, DefaultCheckDays, cfg.DefaultCheckDays)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Contains(t, warnings.String(), "DefaultCheckDays")
	assert.Contains(t, warnings.String(), "SMTPPort")
}
