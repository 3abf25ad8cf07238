package repo

import (
	"context"
	"errors"
	"strings"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceRepository — справочники категорий и мест хранения.
type ReferenceRepository interface {
	WithTx(tx *gorm.DB) ReferenceRepository

	// FindOrCreate возвращает id строки с точно таким именем (после trim), создавая её при отсутствии.
	FindOrCreate(ctx context.Context, kind model.RefKind, name string) (int64, error)

	// Seed вставляет имена, пропуская пустые и уже существующие. Возвращает число созданных строк.
	Seed(ctx context.Context, kind model.RefKind, names []string) (int, error)

	// ListNames возвращает имена по алфавиту.
	ListNames(ctx context.Context, kind model.RefKind) ([]string, error)

	// Delete удаляет строку по имени; если на неё ссылаются товары, IntegrityError.
	Delete(ctx context.Context, kind model.RefKind, name string) error

	// DeleteAll очищает справочник; если хоть одна строка используется, IntegrityError.
	DeleteAll(ctx context.Context, kind model.RefKind) (int64, error)
}

type referenceRepo struct {
	db *gorm.DB
}

// NewReferenceRepository создаёт репозиторий справочников.
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) WithTx(tx *gorm.DB) ReferenceRepository {
	if tx == nil {
		return r
	}
	return &referenceRepo{db: tx}
}

func (r *referenceRepo) FindOrCreate(ctx context.Context, kind model.RefKind, name string) (int64, error) {
	table, err := kind.Table()
	if err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.Validation("%s name is required", kind)
	}

	var ref model.Reference
	err = r.db.WithContext(ctx).Table(table).Where("name = ?", name).Take(&ref).Error
	if err == nil {
		return ref.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, wrapDBError(err, "find "+kind.String())
	}

	ref = model.Reference{Name: name}
	if err := r.db.WithContext(ctx).Table(table).Create(&ref).Error; err != nil {
		return 0, wrapDBError(err, "create "+kind.String())
	}
	return ref.ID, nil
}

func (r *referenceRepo) Seed(ctx context.Context, kind model.RefKind, names []string) (int, error) {
	table, err := kind.Table()
	if err != nil {
		return 0, err
	}
	created := 0
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		ref := model.Reference{Name: n}
		tx := r.db.WithContext(ctx).Table(table).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&ref)
		if tx.Error != nil {
			return created, wrapDBError(tx.Error, "seed "+kind.String())
		}
		created += int(tx.RowsAffected)
	}
	return created, nil
}

func (r *referenceRepo) ListNames(ctx context.Context, kind model.RefKind) ([]string, error) {
	table, err := kind.Table()
	if err != nil {
		return nil, err
	}
	names := []string{}
	if err := r.db.WithContext(ctx).Table(table).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, wrapDBError(err, "list "+kind.String())
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *referenceRepo) Delete(ctx context.Context, kind model.RefKind, name string) error {
	table, err := kind.Table()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	tx := r.db.WithContext(ctx).Table(table).Where("name = ?", name).Delete(&model.Reference{})
	if tx.Error != nil {
		return wrapDBError(tx.Error, "delete "+kind.String()+" "+name)
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("%s %q not found", kind, name)
	}
	return nil
}

func (r *referenceRepo) DeleteAll(ctx context.Context, kind model.RefKind) (int64, error) {
	table, err := kind.Table()
	if err != nil {
		return 0, err
	}
	tx := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Table(table).Delete(&model.Reference{})
	if tx.Error != nil {
		return 0, wrapDBError(tx.Error, "wipe "+kind.String())
	}
	return tx.RowsAffected, nil
}
