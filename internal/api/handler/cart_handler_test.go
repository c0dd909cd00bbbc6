package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/core/domain"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub store service
// ---------------------------------------------------------------------------

type stubStoreService struct {
	products []domain.Product
	cart     []domain.CartLine
}

func (s *stubStoreService) Initialize(context.Context) {}

func (s *stubStoreService) Products(context.Context) []domain.Product { return s.products }

func (s *stubStoreService) GetProduct(_ context.Context, id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (s *stubStoreService) Cart(context.Context) []domain.CartLine { return s.cart }

func (s *stubStoreService) AddToCart(_ context.Context, id string) (*ports.CartMutationResult, error) {
	p, err := s.GetProduct(context.Background(), id)
	if err != nil {
		return nil, err
	}
	s.cart = append(s.cart, domain.CartLine{ID: p.ID, Name: p.Name, Price: p.Price, Img: p.Img, Quantity: 1})
	return &ports.CartMutationResult{ProductName: p.Name, Quantity: 1, ItemCount: len(s.cart)}, nil
}

func (s *stubStoreService) RemoveFromCart(_ context.Context, id string) (*ports.CartMutationResult, error) {
	for i, line := range s.cart {
		if line.ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return &ports.CartMutationResult{ProductName: line.Name}, nil
		}
	}
	return nil, domain.ErrCartLineNotFound
}

func (s *stubStoreService) AddProduct(context.Context, ports.AddProductInput) (*domain.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStoreService) DeleteProduct(_ context.Context, id string) (*ports.ProductMutationResult, error) {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return &ports.ProductMutationResult{ProductName: p.Name}, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCartHandler_AddItem_Success(t *testing.T) {
	store := &stubStoreService{
		products: []domain.Product{{ID: "1", Name: "Mug", Price: 10, Img: "mug.jpg"}},
	}
	h := NewCartHandler(store)

	c, rec := newTestContext(t, http.MethodPost, "/v1/cart/items", `{"product_id":"1"}`)
	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Cart    struct {
			ItemCount int  `json:"item_count"`
			Empty     bool `json:"empty"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Mug added to cart" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Cart.Empty || resp.Cart.ItemCount != 1 {
		t.Errorf("unexpected cart view: %+v", resp.Cart)
	}
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	h := NewCartHandler(&stubStoreService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/cart/items", `{}`)
	err := h.AddItem(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	h := NewCartHandler(&stubStoreService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/cart/items", `{"product_id":"42"}`)
	err := h.AddItem(c)

	// Surfaced as the domain error; the central error handler maps it to 404.
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartHandler_RemoveItem_Success(t *testing.T) {
	store := &stubStoreService{
		cart: []domain.CartLine{{ID: "1", Name: "Mug", Price: 10, Quantity: 2}},
	}
	h := NewCartHandler(store)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/cart/items/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.RemoveItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mug removed from cart") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCartHandler_Get_EmptyCart(t *testing.T) {
	h := NewCartHandler(&stubStoreService{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/cart", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var view struct {
		Empty bool `json:"empty"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !view.Empty {
		t.Error("expected the empty cart marker")
	}
}
