// Package cart holds the authoritative line items of one shopping cart.
//
// A Store is created once per browser session. It loads its initial items from
// a port.CartStorage exactly once, and writes the full item list back after
// every mutation that changes it. Write failures never roll back a mutation.
package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Store struct {
	mu       sync.Mutex
	items    []domain.CartItem
	storage  port.CartStorage
	currency currency.Unit
	logger   *zap.Logger
}

func NewStore(ctx context.Context, storage port.CartStorage, cur currency.Unit, logger *zap.Logger) *Store {
	items := storage.Load(ctx)

	logger.Debug("cart loaded", zap.Int("lines", len(items)))

	return &Store{
		items:    items,
		storage:  storage,
		currency: cur,
		logger:   logger,
	}
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store) Cart() domain.Cart {
	return domain.Cart{Items: s.Items()}
}

func (s *Store) ItemCount() int {
	return s.Cart().ItemCount()
}

func (s *Store) Subtotal() domain.Money {
	return s.Cart().Subtotal(s.currency)
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items) == 0
}

func (s *Store) Currency() currency.Unit {
	return s.currency
}

// AddItem merges qty into the line with item.ID, or appends a new line.
// item.Qty is ignored; qty is clamped to [MinQty, MaxQty] and merges saturate.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem, qty int) {
	qty = domain.ClampQty(qty)

	s.mutate(ctx, "add", item.ID, func(items []domain.CartItem) ([]domain.CartItem, bool) {
		if i := indexOf(items, item.ID); i >= 0 {
			items[i].Qty = domain.AddQty(items[i].Qty, qty)
			return items, true
		}

		item.Qty = qty
		return append(items, item), true
	})
}

func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mutate(ctx, "remove", id, func(items []domain.CartItem) ([]domain.CartItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		return slices.Delete(items, i, i+1), true
	})
}

// SetQty sets the quantity to max(1, floor(qty)); see domain.NormalizeQty.
func (s *Store) SetQty(ctx context.Context, id string, qty float64) {
	n := domain.NormalizeQty(qty)

	s.mutate(ctx, "set_qty", id, func(items []domain.CartItem) ([]domain.CartItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		items[i].Qty = n
		return items, true
	})
}

func (s *Store) Inc(ctx context.Context, id string) {
	s.mutate(ctx, "inc", id, func(items []domain.CartItem) ([]domain.CartItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		items[i].Qty = domain.AddQty(items[i].Qty, 1)
		return items, true
	})
}

// Dec never removes a line; the quantity stops at 1.
func (s *Store) Dec(ctx context.Context, id string) {
	s.mutate(ctx, "dec", id, func(items []domain.CartItem) ([]domain.CartItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		items[i].Qty = max(items[i].Qty-1, domain.MinQty)
		return items, true
	})
}

func (s *Store) Clear(ctx context.Context) {
	s.mutate(ctx, "clear", "", func([]domain.CartItem) ([]domain.CartItem, bool) {
		return []domain.CartItem{}, true
	})
}

// mutate applies fn to a private copy of the items and, when fn reports a
// change, publishes the copy and saves it before releasing the lock.
func (s *Store) mutate(ctx context.Context, op, id string, fn func([]domain.CartItem) ([]domain.CartItem, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(slices.Clone(s.items))
	if !changed {
		return
	}

	s.items = next
	s.storage.Save(ctx, slices.Clone(next))

	s.logger.Debug("cart changed",
		zap.String("op", op),
		zap.String("item_id", id),
		zap.Int("lines", len(next)))
}

func indexOf(items []domain.CartItem, id string) int {
	return slices.IndexFunc(items, func(item domain.CartItem) bool {
		return item.ID == id
	})
}
