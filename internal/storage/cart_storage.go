// Package storage keeps a browser's cart in a SnapshotRepository.
// Every failure is logged and absorbed: a cart that cannot be read loads empty,
// a cart that cannot be written stays authoritative in memory.
package storage

import (
	"context"
	"errors"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// DefaultKey is the base storage key for persisted carts.
const DefaultKey = "vsumh_cart_v1"

// KeyFor scopes the base key to one browser session.
func KeyFor(base, sessionID string) string {
	if base == "" {
		base = DefaultKey
	}
	return base + ":" + sessionID
}

type Cart struct {
	repo     port.SnapshotRepository
	key      string
	currency currency.Unit
	logger   *zap.Logger
}

func New(repo port.SnapshotRepository, key string, cur currency.Unit, logger *zap.Logger) *Cart {
	return &Cart{
		repo:     repo,
		key:      key,
		currency: cur,
		logger:   logger.With(zap.String("storage_key", key)),
	}
}

func (s *Cart) Load(ctx context.Context) []domain.CartItem {
	payload, err := s.repo.GetSnapshot(ctx, s.key)
	if err != nil {
		if !errors.Is(err, port.ErrSnapshotNotFound) {
			s.logger.Warn("cart snapshot unreadable", zap.Error(err))
		}
		return []domain.CartItem{}
	}

	items, dropped, err := decodeItems(payload, s.currency)
	if err != nil {
		s.logger.Warn("cart snapshot corrupt, starting empty", zap.Error(err))
		return []domain.CartItem{}
	}
	if dropped > 0 {
		s.logger.Warn("dropped invalid cart entries", zap.Int("dropped", dropped))
	}
	if items == nil {
		items = []domain.CartItem{}
	}

	return items
}

// Save writes the items under the key. An empty cart deletes the snapshot.
func (s *Cart) Save(ctx context.Context, items []domain.CartItem) {
	if len(items) == 0 {
		if _, err := s.repo.DeleteSnapshot(ctx, s.key); err != nil {
			s.logger.Warn("cart snapshot not deleted", zap.Error(err))
		}
		return
	}

	payload, err := encodeItems(items)
	if err != nil {
		s.logger.Warn("cart snapshot not encoded", zap.Error(err))
		return
	}

	if err := s.repo.SaveSnapshot(ctx, s.key, payload); err != nil {
		s.logger.Warn("cart snapshot not saved", zap.Error(err), zap.Int("items", len(items)))
	}
}

type disabled struct{}

// Disabled is a CartStorage for contexts without durable storage:
// it always loads an empty cart and discards writes.
func Disabled() port.CartStorage {
	return disabled{}
}

func (disabled) Load(context.Context) []domain.CartItem { return []domain.CartItem{} }

func (disabled) Save(context.Context, []domain.CartItem) {}
