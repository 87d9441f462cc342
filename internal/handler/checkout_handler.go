package handler

import (
	"encoding/json"
	"net/http"

	"myshop/internal/model"
	"myshop/internal/order"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles order placement and the local order log.
type CheckoutHandler struct {
	recorder *order.Recorder
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(recorder *order.Recorder, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		recorder: recorder,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// PlaceOrder handles POST /api/checkout requests. Validation failures
// return 400 and leave both the cart and the order log untouched.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var customer model.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	record, err := h.recorder.PlaceOrder(customer)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// GetOrders handles GET /api/orders requests against the local order log.
func (h *CheckoutHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.recorder.Orders())
}
