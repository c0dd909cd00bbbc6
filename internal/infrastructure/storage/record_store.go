// Package storage implements the persistence adapter: JSON-serialized state
// records written under fixed keys to a pluggable key-value backend.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minimarket/storefront-system/internal/core/domain"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

// The three fixed record keys. Namespaced so the records coexist with other
// data when the backend is a shared Redis or Mongo instance.
const (
	KeyProducts = "storefront:products"
	KeyCart     = "storefront:cart"
	KeyUser     = "storefront:user"
)

var _ ports.StateRepository = (*RecordStore)(nil)

// RecordStore marshals and unmarshals the state records over any
// KeyValueStore. Pure plumbing: no business logic lives here.
type RecordStore struct {
	kv ports.KeyValueStore
}

func NewRecordStore(kv ports.KeyValueStore) *RecordStore {
	return &RecordStore{kv: kv}
}

func (r *RecordStore) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.load(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RecordStore) SaveProducts(ctx context.Context, products []domain.Product) error {
	return r.save(ctx, KeyProducts, products)
}

func (r *RecordStore) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	var cart []domain.CartLine
	if err := r.load(ctx, KeyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *RecordStore) SaveCart(ctx context.Context, cart []domain.CartLine) error {
	return r.save(ctx, KeyCart, cart)
}

func (r *RecordStore) LoadUser(ctx context.Context) (*domain.StoredUser, error) {
	var user domain.StoredUser
	if err := r.load(ctx, KeyUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RecordStore) SaveUser(ctx context.Context, user *domain.StoredUser) error {
	return r.save(ctx, KeyUser, user)
}

// load reads and decodes one record. A payload that fails to decode is
// reported as domain.ErrCorruptRecord so callers can fall back to defaults.
func (r *RecordStore) load(ctx context.Context, key string, out any) error {
	payload, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, key, err)
	}
	return nil
}

func (r *RecordStore) save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
