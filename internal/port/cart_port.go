package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/merchhub/internal/domain"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// CartStorage is the durable home of one browser's cart.
// Implementations never fail: unreadable state loads as an empty cart
// and failed writes are dropped.
type CartStorage interface {
	Load(ctx context.Context) []domain.CartItem
	Save(ctx context.Context, items []domain.CartItem)
}

// SnapshotRepository stores serialized carts by storage key.
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context, storageKey string) (string, error)
	SaveSnapshot(ctx context.Context, storageKey string, payload string) error
	DeleteSnapshot(ctx context.Context, storageKey string) (bool, error)
}
