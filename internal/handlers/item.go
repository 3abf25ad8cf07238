package handlers

import (
	"net/http"
	"strconv"

	"StockDLC/internal/apperr"
	"StockDLC/internal/config"
	"StockDLC/internal/model"
	"StockDLC/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обслуживает товары, их списание и выборку по DLC.
type ItemHandler struct {
	Inventory Inventory
	Logger    *zap.SugaredLogger
	Config    *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(inventory Inventory, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemHandler{Inventory: inventory, Logger: logger, Config: cfg}
}

// CreateItemRequest — тело POST /items.
type CreateItemRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Category   string `json:"category" validate:"required,max=100"`
	Perishable *bool  `json:"perishable" validate:"required"`
	DLC        string `json:"dlc" validate:"required,datetime=2006-01-02"`
	Location   string `json:"location" validate:"required,max=100"`
}

// DisposeRequest — тело POST /items/{id}/dispose.
type DisposeRequest struct {
	Outcome string `json:"outcome" validate:"required,outcome"`
}

type DisposeResponse struct {
	Status  string        `json:"status"`
	ID      int64         `json:"id"`
	Outcome model.Outcome `json:"outcome"`
}

type HealthResponse struct {
	Status string `json:"status"`
	DBOK   bool   `json:"db_ok"`
}

// Health проверяет, что хранилище отвечает.
func (h *ItemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Inventory.Ping(r.Context()); err != nil {
		h.Logger.Warnw("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", DBOK: false})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DBOK: true})
}

// List возвращает все товары по возрастанию DLC.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.ListItems(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create добавляет товар.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeErrorStatus(w, h.Logger, http.StatusUnprocessableEntity, err)
		return
	}

	rec, err := h.Inventory.CreateItem(r.Context(), service.NewItem{
		Name:       req.Name,
		Category:   req.Category,
		Perishable: *req.Perishable,
		DLC:        req.DLC,
		Location:   req.Location,
	})
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Expiring возвращает скоропортящиеся товары с DLC в пределах ?days=N.
func (h *ItemHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	days, err := parseQueryInt(r, "days", h.Config.DefaultCheckDays, 0, service.MaxExpiryWindowDays)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	items, err := h.Inventory.ItemsExpiringWithin(r.Context(), days)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Dispose списывает товар в журнал и удаляет его из запаса.
func (h *ItemHandler) Dispose(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, h.Logger, apperr.Validation("item id must be a positive integer"))
		return
	}

	var req DisposeRequest
	if derr := decodeJSONBody(r, &req); derr != nil {
		writeErrorStatus(w, h.Logger, http.StatusUnprocessableEntity, derr)
		return
	}

	res, err := h.Inventory.DisposeItem(r.Context(), id, req.Outcome)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, DisposeResponse{Status: "ok", ID: res.ItemID, Outcome: res.Outcome})
}

// WasteSummary возвращает количество списаний по исходу.
func (h *ItemHandler) WasteSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Inventory.WasteSummary(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
