package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"myshop/internal/cart"
	"myshop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartHandler exposes the cart store over HTTP. It holds no state of its
// own; every request reads a fresh snapshot or issues a mutation.
type CartHandler struct {
	cart   *cart.Store
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartStore *cart.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cartStore,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// CartResponse is the cart view returned by read and mutation endpoints.
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// AddItemRequest is the payload for POST /api/cart/items. Title, price and
// image come from the catalogue response the caller already holds; the
// cart store itself never calls the catalogue.
type AddItemRequest struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity *int            `json:"quantity,omitempty"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.cartView())
}

// Count handles GET /api/cart/count requests, backing the header badge.
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": h.cart.Count()})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "product title is required", h.logger)
		return
	}

	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "product price must not be negative", h.logger)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := model.CartItem{
		ID:    req.ID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}

	if err := h.cart.Add(item, quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, h.cartView())
}

// UpdateQuantity handles POST /api/cart/items/{id}/increase and
// POST /api/cart/items/{id}/decrease requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, action, ok := parseItemAction(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid cart item path", h.logger)
		return
	}

	switch action {
	case "increase":
		h.cart.IncreaseQuantity(id)
	case "decrease":
		h.cart.DecreaseQuantity(id)
	default:
		writeError(w, http.StatusBadRequest, "unknown cart action", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.cartView())
}

// RemoveItem handles DELETE /api/cart/items/{id} requests. Removing an
// absent item is not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/cart/items/"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID", h.logger)
		return
	}

	h.cart.Remove(id)
	writeJSON(w, http.StatusOK, h.cartView())
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) cartView() CartResponse {
	return CartResponse{
		Items: h.cart.Items(),
		Total: h.cart.TotalPrice(),
	}
}

// parseItemAction splits /api/cart/items/{id}/{action} into its parts.
func parseItemAction(path string) (int64, string, bool) {
	rest := strings.TrimPrefix(path, "/api/cart/items/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return 0, "", false
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", false
	}

	return id, parts[1], true
}
