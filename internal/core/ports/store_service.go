package ports

import (
	"context"

	"github.com/minimarket/storefront-system/internal/core/domain"
)

// AddProductInput carries the raw admin form fields for a new product.
// Price arrives as text and is parsed by the service; a non-numeric value is
// a validation failure, not a bind failure.
type AddProductInput struct {
	Name        string
	Price       string
	Img         string
	Description string
}

// CartMutationResult reports the outcome of a cart mutation so the caller can
// build user feedback ("Desk Lamp added to cart").
type CartMutationResult struct {
	ProductName string
	// Quantity is the line quantity after the mutation (0 after removal).
	Quantity int
	// ItemCount is the total number of items across the whole cart.
	ItemCount int
}

// ProductMutationResult reports the outcome of a catalog mutation.
type ProductMutationResult struct {
	ProductName string
}

// StoreService owns the authoritative in-memory product and cart state. Every
// mutation persists the affected slice before returning, so storage never
// observably lags behind memory between requests.
type StoreService interface {
	// Initialize loads persisted state, seeding the catalog on first run.
	// It never fails outward: corrupt or missing records degrade to defaults.
	Initialize(ctx context.Context)

	// Products returns a read-only snapshot of the catalog.
	Products(ctx context.Context) []domain.Product
	// GetProduct resolves a single product by ID.
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	// Cart returns a read-only snapshot of the cart.
	Cart(ctx context.Context) []domain.CartLine

	// AddToCart increments the line for productID, appending a fresh line
	// with quantity 1 on first add. Returns domain.ErrProductNotFound when
	// the ID does not resolve; the cart is left unchanged in that case.
	AddToCart(ctx context.Context, productID string) (*CartMutationResult, error)
	// RemoveFromCart deletes the whole line (never a decrement). Returns
	// domain.ErrCartLineNotFound when no line matches.
	RemoveFromCart(ctx context.Context, productID string) (*CartMutationResult, error)

	// AddProduct validates the input, assigns a fresh ID and appends to the
	// catalog. Returns domain.ErrValidation without mutating state when any
	// field is missing or the price does not parse.
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	// DeleteProduct removes a product from the catalog. Matching cart lines
	// are deliberately left in place (they are snapshots, not references).
	DeleteProduct(ctx context.Context, productID string) (*ProductMutationResult, error)
}
