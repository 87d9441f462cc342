package cart

import (
	"sync"

	"myshop/internal/model"
	"myshop/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StorageKey is the key the cart is persisted under. The full item list is
// rewritten on every mutation.
const StorageKey = "cart"

// Subscriber receives the new cart snapshot after every mutation.
// Subscribers must not call back into the Store.
type Subscriber func(items []model.CartItem)

// Store owns the live collection of selected items. It is the sole writer
// of cart state: callers read snapshots and issue mutation requests, never
// touch the collection directly. All operations serialise on one mutex, so
// two mutations always apply in dispatch order, each observing the result
// of the prior one. Every mutation persists the full cart before
// subscribers are notified.
type Store struct {
	mu          sync.Mutex
	items       []model.CartItem
	kv          store.Store
	subscribers []Subscriber
	logger      zerolog.Logger
}

// New creates an empty cart store backed by kv. Call Hydrate to load a
// prior session's snapshot.
func New(kv store.Store, logger zerolog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Hydrate replaces the in-memory cart with the persisted snapshot, if one
// exists and is well-formed. Malformed entries are discarded rather than
// propagated: a quantity below one or a negative price drops the entry, a
// repeated id merges into the earlier entry. Absent or undecodable state
// leaves the cart empty.
func (s *Store) Hydrate() {
	var persisted []model.CartItem
	if !s.kv.Read(StorageKey, &persisted) {
		s.logger.Debug().Msg("no persisted cart, starting empty")
		return
	}

	items := make([]model.CartItem, 0, len(persisted))
	dropped := 0
	for _, item := range persisted {
		if item.Quantity < 1 || item.Price.IsNegative() {
			dropped++
			continue
		}
		if i := indexOf(items, item.ID); i >= 0 {
			items[i].Quantity += item.Quantity
			continue
		}
		items = append(items, item)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info().
		Int("items", len(items)).
		Int("dropped", dropped).
		Msg("cart hydrated")
}

// Add inserts the product into the cart, merging into the existing entry
// when one with the same id is already present. Quantity below one is
// rejected without mutating anything.
func (s *Store) Add(item model.CartItem, quantity int) error {
	if quantity < 1 {
		s.logger.Warn().
			Int64("product_id", item.ID).
			Int("quantity", quantity).
			Msg("rejected non-positive quantity")
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	if i := indexOf(s.items, item.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		item.Quantity = quantity
		s.items = append(s.items, item)
	}
	snapshot, subscribers := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Int64("product_id", item.ID).
		Int("quantity", quantity).
		Msg("item added to cart")

	notify(subscribers, snapshot)
	return nil
}

// Remove deletes the entry for id. Absent id is a no-op.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	i := indexOf(s.items, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snapshot, subscribers := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug().Int64("product_id", id).Msg("item removed from cart")
	notify(subscribers, snapshot)
}

// IncreaseQuantity raises the entry's quantity by one. Absent id is a no-op.
func (s *Store) IncreaseQuantity(id int64) {
	s.mu.Lock()
	i := indexOf(s.items, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity++
	snapshot, subscribers := s.commitLocked()
	s.mu.Unlock()

	notify(subscribers, snapshot)
}

// DecreaseQuantity lowers the entry's quantity by one, removing the entry
// entirely at quantity one. A quantity-zero entry never exists. Absent id
// is a no-op.
func (s *Store) DecreaseQuantity(id int64) {
	s.mu.Lock()
	i := indexOf(s.items, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if s.items[i].Quantity <= 1 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	} else {
		s.items[i].Quantity--
	}
	snapshot, subscribers := s.commitLocked()
	s.mu.Unlock()

	notify(subscribers, snapshot)
}

// Checkout runs the whole checkout transition as a single cart mutation.
// commit receives the current snapshot with the mutex held; once it
// returns nil the cart is emptied and the empty state persisted, before
// any other mutation can run. No add, remove or second checkout can
// interleave between the snapshot commit sees and the clear. An empty
// cart fails with ErrEmptyCart without invoking commit; a commit error
// leaves the cart untouched. commit must not call back into the Store.
func (s *Store) Checkout(commit func(items []model.CartItem) error) error {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return model.ErrEmptyCart
	}
	if err := commit(snapshot(s.items)); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = nil
	snap, subscribers := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug().Msg("cart cleared after checkout")
	notify(subscribers, snap)
	return nil
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	snapshot, subscribers := s.commitLocked()
	s.mu.Unlock()

	s.logger.Debug().Msg("cart cleared")
	notify(subscribers, snapshot)
}

// Items returns a copy of the current collection, safe to iterate while
// the cart keeps mutating.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

// TotalPrice returns the sum of price times quantity over all entries,
// computed fresh from current state.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count returns the total number of units across all entries, as shown on
// the header badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subscribe registers fn to receive the new snapshot after every mutation.
// Notification is synchronous and happens after the cart is persisted.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// commitLocked persists the current collection and returns the snapshot to
// notify subscribers with. Must be called with the mutex held. A failed
// write is logged and the session continues in memory.
func (s *Store) commitLocked() ([]model.CartItem, []Subscriber) {
	if err := s.kv.Write(StorageKey, persistable(s.items)); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart, continuing in memory")
	}
	return snapshot(s.items), s.subscribers
}

func notify(subscribers []Subscriber, items []model.CartItem) {
	for _, fn := range subscribers {
		fn(items)
	}
}

func snapshot(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}

// persistable keeps the stored layout a JSON array even for an empty cart.
func persistable(items []model.CartItem) []model.CartItem {
	if items == nil {
		return []model.CartItem{}
	}
	return items
}

func indexOf(items []model.CartItem, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
