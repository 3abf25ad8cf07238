package repo

import (
	"errors"
	"fmt"
	"strings"

	"StockDLC/internal/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isConstraintViolation распознаёт нарушения FK/UNIQUE/CHECK во всех поддерживаемых драйверах.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// класс 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return strings.Contains(err.Error(), "constraint failed")
}

// wrapDBError оборачивает ошибку хранилища: нарушения ограничений становятся IntegrityError,
// остальное пробрасывается как есть с контекстом операции.
func wrapDBError(err error, op string) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return apperr.Integrity(err, "%s", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
