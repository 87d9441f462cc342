package handler

import (
	"errors"
	"net/http"
	"strconv"

	"myshop/internal/catalog"
	"myshop/internal/model"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests by proxying the
// remote catalogue. Catalogue failures surface as 502 so the caller can
// retry; they never touch cart or order state.
type ProductHandler struct {
	catalog catalog.Service
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog catalog.Service, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalogue unavailable, please retry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{id}
	path := r.URL.Path
	if len(path) <= len("/api/products/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	id, err := strconv.ParseInt(path[len("/api/products/"):], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusBadGateway, "catalogue unavailable, please retry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
