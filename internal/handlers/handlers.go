package handlers

import (
	"context"
	"net/http"

	"StockDLC/internal/config"
	"StockDLC/internal/middleware"
	"StockDLC/internal/model"
	"StockDLC/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Inventory — операции сервиса, которые публикует HTTP-слой.
type Inventory interface {
	Ping(ctx context.Context) error
	ListCategories(ctx context.Context) ([]string, error)
	ListLocations(ctx context.Context) ([]string, error)
	DeleteReference(ctx context.Context, kind model.RefKind, name string) error
	CreateItem(ctx context.Context, in service.NewItem) (model.ItemRecord, error)
	ListItems(ctx context.Context) ([]model.ItemRecord, error)
	DisposeItem(ctx context.Context, id int64, outcome string) (service.DisposalResult, error)
	ItemsExpiringWithin(ctx context.Context, days int) ([]model.ItemRecord, error)
	WasteSummary(ctx context.Context) ([]model.OutcomeCount, error)
}

var _ Inventory = (*service.InventoryService)(nil)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров. metricsHandler может быть nil.
func NewHandler(
	inventory Inventory,
	logger *zap.SugaredLogger,
	cfg *config.Config,
	metricsHandler http.Handler,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewItemHandler(inventory, logger, cfg)
	refHandler := NewReferenceHandler(inventory, logger)

	r.Get("/health", itemHandler.Health)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// Reference routes
	r.Get("/categories", refHandler.Categories)
	r.Get("/locations", refHandler.Locations)
	r.Delete("/categories/{name}", refHandler.DeleteCategory)
	r.Delete("/locations/{name}", refHandler.DeleteLocation)

	// Item routes
	r.Get("/items", itemHandler.List)
	r.Post("/items", itemHandler.Create)
	r.Get("/items/expiring", itemHandler.Expiring)
	r.Post("/items/{id}/dispose", itemHandler.Dispose)
	r.Get("/waste/summary", itemHandler.WasteSummary)

	return &Handler{Router: r}
}
