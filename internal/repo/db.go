package repo

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// DetectDialect определяет движок по строке подключения: URL/keyword DSN Postgres,
// всё остальное считается путём к файлу SQLite.
func DetectDialect(dsn string) string {
	d := strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(d, "postgres://"), strings.HasPrefix(d, "postgresql://"):
		return DialectPostgres
	case strings.HasPrefix(d, "host=") || strings.Contains(d, " host="):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

// SQLiteDSN превращает путь в DSN modernc.org/sqlite с включёнными внешними ключами.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	pragmas := []string{}
	if !strings.Contains(dsn, "foreign_keys") {
		pragmas = append(pragmas, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if len(pragmas) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

// Open открывает хранилище без миграций.
func Open(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	var dialector gorm.Dialector
	switch DetectDialect(dsn) {
	case DialectPostgres:
		dialector = postgres.New(postgres.Config{DSN: dsn})
	default:
		// modernc.org/sqlite регистрируется под именем "sqlite"
		dialector = gormsqlite.Dialector{DriverName: "sqlite", DSN: SQLiteDSN(dsn)}
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}
	return db, nil
}

// InitDB открывает хранилище и доводит схему до актуальной версии.
func InitDB(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Close закрывает пул соединений.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
