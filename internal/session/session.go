// Package session maps browser sessions to their cart and checkout form.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/nikolayk812/merchhub/internal/cart"
	"github.com/nikolayk812/merchhub/internal/checkout"
	"github.com/nikolayk812/merchhub/internal/port"
	"github.com/nikolayk812/merchhub/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
)

const DefaultCacheSize = 10000

var defaultCurrency = currency.MustParseISO("PHP")

var (
	ErrEmptySessionID   = errors.New("session id is empty")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)

// Session is one browser's cart and checkout form.
type Session struct {
	ID       string
	Cart     *cart.Store
	Checkout *checkout.Flow
}

type Manager struct {
	repo     port.SnapshotRepository
	identity port.IdentityProvider
	logger   *zap.Logger

	baseKey   string
	currency  currency.Unit
	cacheSize int
	flowOpts  []checkout.Option

	loads singleflight.Group
	cache *lru.Cache
}

// Option defines a functional option for configuring a Manager.
type Option func(*Manager) error

// WithStorageKey sets the base key that per-session storage keys derive from.
func WithStorageKey(base string) Option {
	return func(m *Manager) error {
		m.baseKey = base
		return nil
	}
}

func WithCurrency(cur currency.Unit) Option {
	return func(m *Manager) error {
		m.currency = cur
		return nil
	}
}

// WithCacheSize bounds the number of sessions held in memory.
func WithCacheSize(size int) Option {
	return func(m *Manager) error {
		if size <= 0 {
			return ErrInvalidCacheSize
		}
		m.cacheSize = size
		return nil
	}
}

// WithFlowOptions is applied to every checkout flow the manager creates.
func WithFlowOptions(opts ...checkout.Option) Option {
	return func(m *Manager) error {
		m.flowOpts = append(m.flowOpts, opts...)
		return nil
	}
}

func NewManager(repo port.SnapshotRepository, identity port.IdentityProvider, logger *zap.Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		repo:      repo,
		identity:  identity,
		logger:    logger,
		baseKey:   storage.DefaultKey,
		currency:  defaultCurrency,
		cacheSize: DefaultCacheSize,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	cache, err := lru.New(m.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("lru.New: %w", err)
	}
	m.cache = cache

	return m, nil
}

// Get returns the session for id, creating it on first use. A session that
// was evicted is rebuilt from its persisted cart; its checkout form starts over.
// Concurrent first requests for one id share a single load; other ids are
// never blocked by it.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}

	if v, ok := m.cache.Get(id); ok {
		return v.(*Session), nil
	}

	v, err, _ := m.loads.Do(id, func() (any, error) {
		if v, ok := m.cache.Get(id); ok {
			return v, nil
		}

		// the load is shared, so one caller's cancellation must not empty it
		s, err := m.newSession(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, fmt.Errorf("newSession: %w", err)
		}

		if evicted := m.cache.Add(id, s); evicted {
			m.logger.Debug("session evicted", zap.Int("cache_size", m.cacheSize))
		}

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Session), nil
}

// Len reports how many sessions are held in memory.
func (m *Manager) Len() int {
	return m.cache.Len()
}

func (m *Manager) newSession(ctx context.Context, id string) (*Session, error) {
	logger := m.logger.With(zap.String("session_id", id))

	cartStorage := storage.New(m.repo, storage.KeyFor(m.baseKey, id), m.currency, logger)
	store := cart.NewStore(ctx, cartStorage, m.currency, logger)

	flow, err := checkout.NewFlow(store, m.identity, logger, m.flowOpts...)
	if err != nil {
		return nil, fmt.Errorf("checkout.NewFlow: %w", err)
	}

	return &Session{ID: id, Cart: store, Checkout: flow}, nil
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}
