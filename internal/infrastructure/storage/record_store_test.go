package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/minimarket/storefront-system/internal/core/domain"
)

// fakeKV is an in-memory KeyValueStore for adapter tests.
type fakeKV struct {
	data   map[string][]byte
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	payload, ok := f.data[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return payload, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Ping(context.Context) error { return nil }
func (f *fakeKV) Close() error               { return nil }

func TestRecordStore_ProductsRoundTrip(t *testing.T) {
	store := NewRecordStore(newFakeKV())
	ctx := context.Background()

	products := []domain.Product{
		{ID: "1", Name: "Mug", Price: 10.5, Img: "mug.jpg", Description: "A mug"},
		{ID: "2", Name: "Shirt", Price: 5, Img: "shirt.jpg", Description: "A shirt"},
	}

	if err := store.SaveProducts(ctx, products); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := store.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, products) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, products)
	}
}

func TestRecordStore_CartRoundTrip(t *testing.T) {
	store := NewRecordStore(newFakeKV())
	ctx := context.Background()

	cart := []domain.CartLine{
		{ID: "1", Name: "Mug", Price: 10, Img: "mug.jpg", Quantity: 3},
	}

	if err := store.SaveCart(ctx, cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := store.LoadCart(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, cart) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cart)
	}
}

func TestRecordStore_UserRoundTrip(t *testing.T) {
	store := NewRecordStore(newFakeKV())
	ctx := context.Background()

	user := &domain.StoredUser{Name: "Alice", Email: "alice@example.com", Pass: "pw"}
	if err := store.SaveUser(ctx, user); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := store.LoadUser(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *user {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, user)
	}
}

func TestRecordStore_AbsentKeys(t *testing.T) {
	store := NewRecordStore(newFakeKV())
	ctx := context.Background()

	if _, err := store.LoadProducts(ctx); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for products, got %v", err)
	}
	if _, err := store.LoadCart(ctx); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for cart, got %v", err)
	}
	if _, err := store.LoadUser(ctx); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for user, got %v", err)
	}
}

func TestRecordStore_CorruptPayload(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyProducts] = []byte(`{not json`)
	kv.data[KeyCart] = []byte(`42`)
	store := NewRecordStore(kv)
	ctx := context.Background()

	if _, err := store.LoadProducts(ctx); !errors.Is(err, domain.ErrCorruptRecord) {
		t.Errorf("expected ErrCorruptRecord for products, got %v", err)
	}
	if _, err := store.LoadCart(ctx); !errors.Is(err, domain.ErrCorruptRecord) {
		t.Errorf("expected ErrCorruptRecord for cart, got %v", err)
	}
}

func TestRecordStore_SaveWrapsBackendError(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("quota exceeded")
	store := NewRecordStore(kv)

	err := store.SaveCart(context.Background(), []domain.CartLine{{ID: "1", Quantity: 1}})
	if err == nil || !errors.Is(err, kv.setErr) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}
