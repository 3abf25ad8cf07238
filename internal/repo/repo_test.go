package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"StockDLC/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB поднимает SQLite-файл во временном каталоге и применяет миграции
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(context.Background(), filepath.Join(t.TempDir(), "stock.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

// хелпер для создания товара со ссылками на справочники
func mkItem(t *testing.T, db *gorm.DB, name, category, location string, perishable bool, dlc string) *model.Item {
	t.Helper()
	ctx := context.Background()
	refs := NewReferenceRepository(db)
	catID, err := refs.FindOrCreate(ctx, model.RefCategory, category)
	require.NoError(t, err)
	locID, err := refs.FindOrCreate(ctx, model.RefLocation, location)
	require.NoError(t, err)

	it := &model.Item{
		Name:       name,
		CategoryID: catID,
		LocationID: locID,
		Perishable: perishable,
		DLC:        mustDate(t, dlc),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, NewItemRepository(db).Create(ctx, it))
	return it
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
