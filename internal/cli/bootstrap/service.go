package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"StockDLC/internal/config"
	"StockDLC/internal/repo"
	"StockDLC/internal/service"

	"go.uber.org/zap"
)

// OpenService открывает хранилище по cfg.DatabaseDSN, применяет миграции
// и собирает сервис инвентаря. Возвращает (service, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenService(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*service.InventoryService, func() error, error) {
	db, err := repo.InitDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", cfg.DatabaseDSN, err)
	}
	svc := service.NewInventoryService(db,
		repo.NewReferenceRepository(db),
		repo.NewItemRepository(db),
		repo.NewWasteLogRepository(db),
		logger,
	)

	var once sync.Once
	var closeErr error
	cleanup := func() error {
		once.Do(func() { closeErr = repo.Close(db) })
		return closeErr
	}
	return svc, cleanup, nil
}

// NewLogger строит логгер CLI: подробный только с флагом -v.
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
