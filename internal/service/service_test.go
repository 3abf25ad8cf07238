package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"StockDLC/internal/model"
	"StockDLC/internal/repo"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// фиксированное «сейчас» для детерминированных проверок окна DLC
var fixedNow = time.Date(2025, time.October, 25, 10, 0, 0, 0, time.Local)

func newTestService(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()
	db, err := repo.InitDB(context.Background(), filepath.Join(t.TempDir(), "stock.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	svc := NewInventoryService(db,
		repo.NewReferenceRepository(db),
		repo.NewItemRepository(db),
		repo.NewWasteLogRepository(db),
		zap.NewNop().Sugar(),
		WithClock(func() time.Time { return fixedNow }),
	)
	return svc, db
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func dayOffset(n int) string {
	return model.DateOf(fixedNow).AddDays(n).String()
}
