package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimarket/storefront-system/internal/api/metrics"
	"github.com/minimarket/storefront-system/internal/core/domain"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

var _ ports.StoreService = (*StoreService)(nil)

// StoreService owns the single in-memory application state. All mutations run
// under one mutex and persist the affected record before the lock is
// released, so storage never lags behind memory between requests.
type StoreService struct {
	repo     ports.StateRepository
	notifier ports.Notifier
	logger   zerolog.Logger

	mu       sync.Mutex
	products []domain.Product
	cart     []domain.CartLine
	lastID   int64
}

func NewStoreService(repo ports.StateRepository, notifier ports.Notifier, logger zerolog.Logger) *StoreService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &StoreService{repo: repo, notifier: notifier, logger: logger}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, bool) {}

// Initialize loads persisted products and cart. An empty store is populated
// with the seed catalog, which is persisted immediately to establish the
// first-run baseline. Load errors of any kind degrade to defaults: corrupt
// storage must never block startup.
func (s *StoreService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.repo.LoadProducts(ctx)
	switch {
	case err == nil:
		// A persisted empty catalog is a valid state and stays empty; only
		// a missing record gets the seed.
		s.products = products
		metrics.StateLoadsTotal.WithLabelValues("products", "ok").Inc()
	case errors.Is(err, domain.ErrRecordNotFound):
		s.logger.Info().Msg("no products record found, seeding catalog")
		metrics.StateLoadsTotal.WithLabelValues("products", "seeded").Inc()
		s.seedCatalog(ctx)
	default:
		s.logger.Warn().Err(err).Msg("products record unreadable, falling back to seed catalog")
		metrics.StateLoadsTotal.WithLabelValues("products", "fallback").Inc()
		s.seedCatalog(ctx)
	}

	cart, err := s.repo.LoadCart(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Msg("cart record unreadable, starting with empty cart")
			metrics.StateLoadsTotal.WithLabelValues("cart", "fallback").Inc()
		} else {
			metrics.StateLoadsTotal.WithLabelValues("cart", "empty").Inc()
		}
		s.cart = nil
	} else {
		s.cart = cart
		metrics.StateLoadsTotal.WithLabelValues("cart", "ok").Inc()
	}

	s.logger.Info().
		Int("products", len(s.products)).
		Int("cart_lines", len(s.cart)).
		Msg("store initialized")
}

func (s *StoreService) seedCatalog(ctx context.Context) {
	s.products = domain.SeedCatalog()
	s.persistProducts(ctx)
}

// Products returns a snapshot copy of the catalog.
func (s *StoreService) Products(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProduct resolves a product by ID, first match in insertion order.
func (s *StoreService) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Cart returns a snapshot copy of the cart.
func (s *StoreService) Cart(ctx context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// AddToCart increments the quantity of the line for productID, appending a
// new line with quantity 1 on first add. A repeated add never duplicates the
// line. The cart is persisted before returning.
func (s *StoreService) AddToCart(ctx context.Context, productID string) (*ports.CartMutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		// Stale UI state (double click, deleted product). Not user-visible.
		s.logger.Debug().Str("product_id", productID).Msg("add to cart: unknown product, ignoring")
		return nil, domain.ErrProductNotFound
	}

	quantity := 0
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			quantity = s.cart[i].Quantity
			break
		}
	}
	if quantity == 0 {
		s.cart = append(s.cart, domain.CartLine{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Img:      product.Img,
			Quantity: 1,
		})
		quantity = 1
	}

	s.persistCart(ctx)
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.notifier.Notify(fmt.Sprintf("%s added to cart", product.Name), false)

	return &ports.CartMutationResult{
		ProductName: product.Name,
		Quantity:    quantity,
		ItemCount:   domain.ComputeCartTotals(s.cart).ItemCount,
	}, nil
}

// RemoveFromCart deletes the whole line for productID; it never decrements.
func (s *StoreService) RemoveFromCart(ctx context.Context, productID string) (*ports.CartMutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.cart {
		if s.cart[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.logger.Debug().Str("product_id", productID).Msg("remove from cart: no matching line, ignoring")
		return nil, domain.ErrCartLineNotFound
	}

	name := s.cart[idx].Name
	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)

	s.persistCart(ctx)
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	s.notifier.Notify(fmt.Sprintf("%s removed from cart", name), false)

	return &ports.CartMutationResult{
		ProductName: name,
		Quantity:    0,
		ItemCount:   domain.ComputeCartTotals(s.cart).ItemCount,
	}, nil
}

// AddProduct validates the admin form fields, assigns a fresh ID and appends
// the product to the catalog. On validation failure the state is untouched.
func (s *StoreService) AddProduct(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
	price, err := parseProductInput(input)
	if err != nil {
		s.notifier.Notify("Please fill in all product fields", true)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{
		ID:          s.nextProductID(),
		Name:        strings.TrimSpace(input.Name),
		Price:       price,
		Img:         strings.TrimSpace(input.Img),
		Description: strings.TrimSpace(input.Description),
	}
	s.products = append(s.products, product)

	s.persistProducts(ctx)
	metrics.ProductsCreatedTotal.Inc()
	s.notifier.Notify(fmt.Sprintf("%s added to catalog", product.Name), false)

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return &product, nil
}

// DeleteProduct removes a product from the catalog. Cart lines referencing it
// are deliberately left alone: they carry their own snapshot of the display
// fields and stay valid for totals.
func (s *StoreService) DeleteProduct(ctx context.Context, productID string) (*ports.ProductMutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.logger.Debug().Str("product_id", productID).Msg("delete product: unknown ID, ignoring")
		return nil, domain.ErrProductNotFound
	}

	name := s.products[idx].Name
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	s.persistProducts(ctx)
	metrics.ProductsDeletedTotal.Inc()
	s.notifier.Notify(fmt.Sprintf("%s removed from catalog", name), false)

	s.logger.Info().Str("product_id", productID).Str("name", name).Msg("product deleted")
	return &ports.ProductMutationResult{ProductName: name}, nil
}

func (s *StoreService) findProduct(productID string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// nextProductID issues a timestamp-derived token, bumped when two products
// are created within the same millisecond so IDs stay unique and increasing.
func (s *StoreService) nextProductID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// persistProducts writes the products record. Failures are non-fatal: the
// in-memory state stays authoritative for the session.
func (s *StoreService) persistProducts(ctx context.Context) {
	if err := s.repo.SaveProducts(ctx, s.products); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("products").Inc()
		s.logger.Warn().Err(err).Msg("failed to persist products record")
	}
}

// persistCart writes the cart record, same non-fatal contract.
func (s *StoreService) persistCart(ctx context.Context) {
	if err := s.repo.SaveCart(ctx, s.cart); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("cart").Inc()
		s.logger.Warn().Err(err).Msg("failed to persist cart record")
	}
}

// parseProductInput enforces presence of all fields and a parseable,
// non-negative price.
func parseProductInput(input ports.AddProductInput) (float64, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Price) == "" ||
		strings.TrimSpace(input.Img) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return 0, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price must be numeric", domain.ErrValidation)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return price, nil
}
