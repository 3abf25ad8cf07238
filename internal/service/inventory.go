package service

import (
	"context"
	"strings"
	"time"

	"StockDLC/internal/apperr"
	"StockDLC/internal/metrics"
	"StockDLC/internal/model"
	"StockDLC/internal/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryService инкапсулирует жизненный цикл товара: добавление, просмотр, списание
// и выборку товаров с истекающим сроком. Каждая изменяющая операция выполняется в одной транзакции.
type InventoryService struct {
	db      *gorm.DB
	refs    repo.ReferenceRepository
	items   repo.ItemRepository
	waste   repo.WasteLogRepository
	metrics *metrics.InventoryMetrics
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// Option настраивает InventoryService.
type Option func(*InventoryService)

// WithClock подменяет источник текущего времени (для тестов и планировщиков).
func WithClock(now func() time.Time) Option {
	return func(s *InventoryService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMetrics(m *metrics.InventoryMetrics) Option {
	return func(s *InventoryService) { s.metrics = m }
}

// NewInventoryService собирает сервис поверх общего дескриптора хранилища.
func NewInventoryService(
	db *gorm.DB,
	refs repo.ReferenceRepository,
	items repo.ItemRepository,
	waste repo.WasteLogRepository,
	logger *zap.SugaredLogger,
	opts ...Option,
) *InventoryService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &InventoryService{
		db:     db,
		refs:   refs,
		items:  items,
		waste:  waste,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewItem — входные данные для добавления товара.
type NewItem struct {
	Name       string
	Category   string
	Perishable bool
	DLC        string
	Location   string
}

// DisposalResult — результат списания.
type DisposalResult struct {
	ItemID  int64         `json:"id"`
	Outcome model.Outcome `json:"outcome"`
}

// CreateItem добавляет товар, создавая недостающие категорию и место хранения.
func (s *InventoryService) CreateItem(ctx context.Context, in NewItem) (model.ItemRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.ItemRecord{}, apperr.Validation("item name is required")
	}
	dlc, err := model.ParseDate(in.DLC)
	if err != nil {
		return model.ItemRecord{}, err
	}

	var rec *model.ItemRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := s.refs.WithTx(tx)
		catID, err := refs.FindOrCreate(ctx, model.RefCategory, in.Category)
		if err != nil {
			return err
		}
		locID, err := refs.FindOrCreate(ctx, model.RefLocation, in.Location)
		if err != nil {
			return err
		}

		items := s.items.WithTx(tx)
		it := &model.Item{
			Name:       name,
			CategoryID: catID,
			LocationID: locID,
			Perishable: in.Perishable,
			DLC:        dlc,
			CreatedAt:  s.now(),
		}
		if err := items.Create(ctx, it); err != nil {
			return err
		}
		rec, err = items.GetRecord(ctx, it.ID)
		return err
	})
	if err != nil {
		s.metrics.OperationFailed("create")
		s.logger.Warnw("CreateItem failed", "name", name, "error", err)
		return model.ItemRecord{}, err
	}

	s.metrics.ItemCreated()
	s.logger.Infow("Item created", "id", rec.ID, "name", rec.Name, "dlc", rec.DLC.String())
	return *rec, nil
}

// ListItems возвращает все товары по возрастанию DLC, при равных датах по имени.
func (s *InventoryService) ListItems(ctx context.Context) ([]model.ItemRecord, error) {
	return s.items.List(ctx)
}

// DisposeItem переносит товар в журнал списаний: запись в журнал и удаление
// выполняются в одной транзакции.
func (s *InventoryService) DisposeItem(ctx context.Context, id int64, outcome string) (DisposalResult, error) {
	o, err := model.ParseOutcome(outcome)
	if err != nil {
		return DisposalResult{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.items.WithTx(tx)
		rec, err := items.GetRecord(ctx, id)
		if err != nil {
			return err
		}
		entry := &model.WasteLogEntry{
			ItemID:     rec.ID,
			Name:       rec.Name,
			Category:   rec.Category,
			Location:   rec.Location,
			Perishable: rec.Perishable,
			DLC:        rec.DLC,
			Outcome:    o,
			LoggedAt:   s.now(),
		}
		if err := s.waste.WithTx(tx).Append(ctx, entry); err != nil {
			return err
		}
		return items.Delete(ctx, id)
	})
	if err != nil {
		s.metrics.OperationFailed("dispose")
		s.logger.Warnw("DisposeItem failed", "id", id, "outcome", o, "error", err)
		return DisposalResult{}, err
	}

	s.metrics.ItemDisposed(o.String())
	s.logger.Infow("Item disposed", "id", id, "outcome", o)
	return DisposalResult{ItemID: id, Outcome: o}, nil
}

// WasteSummary возвращает количество списаний по исходу.
func (s *InventoryService) WasteSummary(ctx context.Context) ([]model.OutcomeCount, error) {
	return s.waste.Summary(ctx)
}

// Ping проверяет доступность хранилища.
func (s *InventoryService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
