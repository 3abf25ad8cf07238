package service

import (
	"context"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"
)

// MaxExpiryWindowDays — верхняя граница окна выборки по DLC (около 10 лет).
const MaxExpiryWindowDays = 3650

// Today — календарная дата «сегодня» по часам сервиса в их локальной зоне.
func (s *InventoryService) Today() model.Date {
	return model.DateOf(s.now())
}

// ItemsExpiringWithin возвращает скоропортящиеся товары, у которых DLC
// попадает в [сегодня, сегодня+days]. При days=0 только истекающие сегодня.
// days вне [0, MaxExpiryWindowDays] даёт ошибку валидации.
func (s *InventoryService) ItemsExpiringWithin(ctx context.Context, days int) ([]model.ItemRecord, error) {
	if days < 0 {
		return nil, apperr.Validation("days must be a non-negative integer, got %d", days)
	}
	if days > MaxExpiryWindowDays {
		return nil, apperr.Validation("days must be at most %d, got %d", MaxExpiryWindowDays, days)
	}
	today := s.Today()
	limit := today.AddDays(days)

	recs, err := s.items.ListPerishableBetween(ctx, today, limit)
	if err != nil {
		s.metrics.OperationFailed("expiry")
		return nil, err
	}
	s.metrics.ExpiryChecked(len(recs))
	s.logger.Debugw("Expiry window queried", "from", today.String(), "to", limit.String(), "found", len(recs))
	return recs, nil
}
