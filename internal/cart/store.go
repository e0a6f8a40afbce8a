// Package cart owns the shopping cart: a mutable line-item collection with a
// selected province, persisted through a swappable Storage port. All totals
// are derived from current state on every read; nothing is cached.
package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/tax"
)

// ShippingFlat is the flat shipping charge applied to every order regardless
// of province or cart contents.
const ShippingFlat int64 = 20

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Store is the single owner of the cart state. Mutations are serialized by
// the mutex and the full state is written to storage after each one, so a
// reader can never observe a half-applied change.
type Store struct {
	storage Storage
	logger  *log.Logger

	mu       sync.Mutex
	items    []Item
	province string
}

// NewStore rehydrates the cart from storage. A missing or corrupt persisted
// cart is deliberately swallowed and treated as empty: a broken cart file
// must never take the storefront down.
func NewStore(storage Storage, logger *log.Logger) *Store {
	s := &Store{storage: storage, logger: logger}

	st, err := storage.Load()
	if err != nil {
		logger.Printf("cart: discarding unreadable persisted state: %v", err)
		return s
	}
	if st != nil {
		s.items = st.Items
		s.province = st.Province
	}
	return s
}

// AddItem merges an item into the cart. If the id is already present its
// quantity is incremented and the newest non-empty image reference wins;
// otherwise the item is appended, preserving insertion order.
func (s *Store) AddItem(item Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += quantity
			if item.ImageURL != "" {
				s.items[i].ImageURL = item.ImageURL
			}
			s.persist()
			return nil
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist()
	return nil
}

// UpdateQuantity sets an item's quantity, clamped to zero. A zero-quantity
// item stays in the cart so the UI can show it as pending removal; it simply
// stops contributing to the subtotal.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem deletes a line item. Removing an absent id is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// NormalizeQuantities bumps every zero-quantity item back to one. Called
// right before checkout so no zero-quantity line can reach an order payload.
func (s *Store) NormalizeQuantities() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.items {
		if s.items[i].Quantity == 0 {
			s.items[i].Quantity = 1
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// SetProvince records the selected shipping province. Empty means
// unselected.
func (s *Store) SetProvince(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.province = code
	s.persist()
}

// Clear empties the cart. The province selection survives.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the line items in display order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Province() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.province
}

// Count returns the total number of units across all line items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums the line totals.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.items)
}

func subtotal(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// Totals is the derived pricing snapshot for the current cart. The breakdown
// components are nil where the province's regime does not charge them; Tax is
// always a usable estimate (defaulting to Ontario when no province is
// selected).
type Totals struct {
	Subtotal int64  `json:"subtotal"`
	GST      int64  `json:"gst"`
	PST      *int64 `json:"pst"`
	QST      *int64 `json:"qst"`
	HST      *int64 `json:"hst"`
	Tax      int64  `json:"tax"`
	Shipping int64  `json:"shipping"`
	Total    int64  `json:"total"`
}

// Totals recomputes the full pricing snapshot from current state.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	province := s.province
	s.mu.Unlock()

	sub := subtotal(items)
	breakdown := tax.ComputeBreakdown(sub, province)
	amount := tax.Amount(sub, province)

	return Totals{
		Subtotal: sub,
		GST:      breakdown.GST,
		PST:      breakdown.PST,
		QST:      breakdown.QST,
		HST:      breakdown.HST,
		Tax:      amount,
		Shipping: ShippingFlat,
		Total:    sub + amount + ShippingFlat,
	}
}

// persist writes the current state through the storage port. Callers must
// hold the mutex. Write failures are logged and swallowed; losing a save
// must not fail the mutation that triggered it.
func (s *Store) persist() {
	st := &State{Items: s.items, Province: s.province}
	if err := s.storage.Save(st); err != nil {
		s.logger.Printf("cart: persist failed: %v", err)
	}
}
