package ports

import (
	"context"

	"github.com/minimarket/storefront-system/internal/core/domain"
)

// KeyValueStore is the raw storage contract: opaque payloads under text keys.
// Get returns domain.ErrRecordNotFound when nothing is stored under key.
// Implementations exist for SQLite (local file), Redis and MongoDB.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// StateRepository is the typed persistence adapter over a KeyValueStore.
// Each method reads or writes one of the three fixed records. Load methods
// return domain.ErrRecordNotFound for absent keys and domain.ErrCorruptRecord
// for payloads that fail to decode.
type StateRepository interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error
	LoadCart(ctx context.Context) ([]domain.CartLine, error)
	SaveCart(ctx context.Context, cart []domain.CartLine) error
	LoadUser(ctx context.Context) (*domain.StoredUser, error)
	SaveUser(ctx context.Context, user *domain.StoredUser) error
}
