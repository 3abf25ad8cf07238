package repo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Встроенные SQL-миграции, по каталогу на диалект.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

func migrationSource(dialect string) (goose.Dialect, string, error) {
	switch dialect {
	case DialectSQLite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	case DialectPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

// Migrate применяет недостающие миграции и возвращает их количество.
func Migrate(ctx context.Context, db *gorm.DB) (int, error) {
	dialect, dir, err := migrationSource(db.Dialector.Name())
	if err != nil {
		return 0, err
	}
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return 0, fmt.Errorf("migrations dir %s: %w", dir, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("getting sql db handle: %w", err)
	}
	provider, err := goose.NewProvider(dialect, sqlDB, sub)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
