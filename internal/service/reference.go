package service

import (
	"context"

	"StockDLC/internal/model"

	"gorm.io/gorm"
)

// SeedResult — сколько строк справочников реально создано.
type SeedResult struct {
	Categories int `json:"categories"`
	Locations  int `json:"locations"`
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]string, error) {
	return s.refs.ListNames(ctx, model.RefCategory)
}

func (s *InventoryService) ListLocations(ctx context.Context) ([]string, error) {
	return s.refs.ListNames(ctx, model.RefLocation)
}

// SeedReferences заполняет справочники (пустой список заменяется значениями по умолчанию).
// При wipe справочники сначала очищаются; если на строки ссылаются товары, вся операция откатывается.
func (s *InventoryService) SeedReferences(ctx context.Context, categories, locations []string, wipe bool) (SeedResult, error) {
	if len(categories) == 0 {
		categories = model.DefaultCategories
	}
	if len(locations) == 0 {
		locations = model.DefaultLocations
	}

	var res SeedResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := s.refs.WithTx(tx)
		if wipe {
			if _, err := refs.DeleteAll(ctx, model.RefCategory); err != nil {
				return err
			}
			if _, err := refs.DeleteAll(ctx, model.RefLocation); err != nil {
				return err
			}
		}
		var err error
		if res.Categories, err = refs.Seed(ctx, model.RefCategory, categories); err != nil {
			return err
		}
		res.Locations, err = refs.Seed(ctx, model.RefLocation, locations)
		return err
	})
	if err != nil {
		s.metrics.OperationFailed("seed")
		s.logger.Warnw("SeedReferences failed", "wipe", wipe, "error", err)
		return SeedResult{}, err
	}
	s.logger.Infow("References seeded", "categories", res.Categories, "locations", res.Locations, "wipe", wipe)
	return res, nil
}

// DeleteReference удаляет неиспользуемую категорию или место хранения.
func (s *InventoryService) DeleteReference(ctx context.Context, kind model.RefKind, name string) error {
	if err := s.refs.Delete(ctx, kind, name); err != nil {
		s.logger.Warnw("DeleteReference failed", "kind", kind.String(), "name", name, "error", err)
		return err
	}
	return nil
}
