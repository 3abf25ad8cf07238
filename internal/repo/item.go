package repo

import (
	"context"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"

	"gorm.io/gorm"
)

// ItemRepository — доступ к товарам на складе.
type ItemRepository interface {
	WithTx(tx *gorm.DB) ItemRepository

	// Create вставляет товар; ссылки на справочники должны существовать.
	Create(ctx context.Context, item *model.Item) error

	// GetRecord возвращает товар с именами категории и места; NotFoundError если id нет.
	GetRecord(ctx context.Context, id int64) (*model.ItemRecord, error)

	// List возвращает все товары по возрастанию DLC, затем по имени.
	List(ctx context.Context) ([]model.ItemRecord, error)

	// ListPerishableBetween возвращает скоропортящиеся товары с from <= DLC <= to.
	ListPerishableBetween(ctx context.Context, from, to model.Date) ([]model.ItemRecord, error)

	// Delete удаляет товар по id; NotFoundError если его нет.
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) WithTx(tx *gorm.DB) ItemRepository {
	if tx == nil {
		return r
	}
	return &itemRepo{db: tx}
}

func (r *itemRepo) records(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(model.Item{}.TableName()).
		Select("item.id, item.name, category.name AS category, location.name AS location, " +
			"item.perishable, item.dlc, item.created_at").
		Joins("JOIN category ON category.id = item.category_id").
		Joins("JOIN location ON location.id = item.location_id")
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return wrapDBError(r.db.WithContext(ctx).Create(item).Error, "insert item")
}

func (r *itemRepo) GetRecord(ctx context.Context, id int64) (*model.ItemRecord, error) {
	var rec model.ItemRecord
	tx := r.records(ctx).Where("item.id = ?", id).Limit(1).Scan(&rec)
	if tx.Error != nil {
		return nil, wrapDBError(tx.Error, "get item")
	}
	if tx.RowsAffected == 0 {
		return nil, apperr.NotFound("item %d not found", id)
	}
	return &rec, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.ItemRecord, error) {
	recs := []model.ItemRecord{}
	if err := r.records(ctx).Order("item.dlc ASC, item.name ASC").Scan(&recs).Error; err != nil {
		return nil, wrapDBError(err, "list items")
	}
	if recs == nil {
		recs = []model.ItemRecord{}
	}
	return recs, nil
}

func (r *itemRepo) ListPerishableBetween(ctx context.Context, from, to model.Date) ([]model.ItemRecord, error) {
	recs := []model.ItemRecord{}
	err := r.records(ctx).
		Where("item.perishable = ?", true).
		Where("item.dlc BETWEEN ? AND ?", from, to).
		Order("item.dlc ASC, item.name ASC").
		Scan(&recs).Error
	if err != nil {
		return nil, wrapDBError(err, "list expiring items")
	}
	if recs == nil {
		recs = []model.ItemRecord{}
	}
	return recs, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if tx.Error != nil {
		return wrapDBError(tx.Error, "delete item")
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("item %d not found", id)
	}
	return nil
}
