package repo

import (
	"context"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"

	"gorm.io/gorm"
)

// WasteLogRepository — журнал списаний. Только добавление: методов изменения и удаления нет.
type WasteLogRepository interface {
	WithTx(tx *gorm.DB) WasteLogRepository
	Append(ctx context.Context, entry *model.WasteLogEntry) error
	Summary(ctx context.Context) ([]model.OutcomeCount, error)
}

type wasteLogRepo struct {
	db *gorm.DB
}

// NewWasteLogRepository создаёт журнал списаний.
func NewWasteLogRepository(db *gorm.DB) WasteLogRepository {
	return &wasteLogRepo{db: db}
}

func (r *wasteLogRepo) WithTx(tx *gorm.DB) WasteLogRepository {
	if tx == nil {
		return r
	}
	return &wasteLogRepo{db: tx}
}

func (r *wasteLogRepo) Append(ctx context.Context, entry *model.WasteLogEntry) error {
	if entry.ID != 0 {
		return apperr.Validation("waste log entry %d is already stored", entry.ID)
	}
	if !entry.Outcome.Valid() {
		return apperr.Validation("invalid outcome %q", entry.Outcome)
	}
	return wrapDBError(r.db.WithContext(ctx).Create(entry).Error, "append waste log")
}

// Summary считает записи журнала по исходу.
func (r *wasteLogRepo) Summary(ctx context.Context) ([]model.OutcomeCount, error) {
	out := []model.OutcomeCount{}
	err := r.db.WithContext(ctx).Model(&model.WasteLogEntry{}).
		Select("outcome, COUNT(*) AS count").
		Group("outcome").
		Order("outcome ASC").
		Scan(&out).Error
	if err != nil {
		return nil, wrapDBError(err, "waste summary")
	}
	if out == nil {
		out = []model.OutcomeCount{}
	}
	return out, nil
}
