package handlers

import (
	"net/http"
	"net/url"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReferenceHandler отдаёт справочники категорий и мест хранения.
type ReferenceHandler struct {
	Inventory Inventory
	Logger    *zap.SugaredLogger
}

func NewReferenceHandler(inventory Inventory, logger *zap.SugaredLogger) *ReferenceHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ReferenceHandler{Inventory: inventory, Logger: logger}
}

func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	names, err := h.Inventory.ListCategories(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *ReferenceHandler) Locations(w http.ResponseWriter, r *http.Request) {
	names, err := h.Inventory.ListLocations(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *ReferenceHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, model.RefCategory)
}

func (h *ReferenceHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, model.RefLocation)
}

// delete удаляет запись справочника; занятая товарами запись даёт 409.
func (h *ReferenceHandler) delete(w http.ResponseWriter, r *http.Request, kind model.RefKind) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if err := h.Inventory.DeleteReference(r.Context(), kind, name); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathParam возвращает декодированный параметр пути. chi сопоставляет маршрут
// по RawPath, если он есть, и тогда параметр приходит в экранированном виде (%2F).
func pathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperr.Validation("path parameter %s is not properly escaped", key)
	}
	return value, nil
}
