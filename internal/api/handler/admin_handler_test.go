package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/core/domain"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

// creatingStoreService extends the stub with a working AddProduct.
type creatingStoreService struct {
	stubStoreService
	lastInput ports.AddProductInput
}

func (s *creatingStoreService) AddProduct(_ context.Context, input ports.AddProductInput) (*domain.Product, error) {
	s.lastInput = input
	return &domain.Product{
		ID:          "1756200000000",
		Name:        input.Name,
		Price:       14.9,
		Img:         input.Img,
		Description: input.Description,
	}, nil
}

func TestAdminHandler_Create_Success(t *testing.T) {
	store := &creatingStoreService{}
	h := NewAdminHandler(store)

	body := `{"name":"Poster","price":"14.90","img":"https://example.com/poster.jpg","description":"A poster"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/admin/products", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if store.lastInput.Price != "14.90" {
		t.Errorf("price must be passed through as text, got %q", store.lastInput.Price)
	}

	var resp productResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || resp.Name != "Poster" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAdminHandler_Create_MissingField(t *testing.T) {
	h := NewAdminHandler(&creatingStoreService{})

	body := `{"name":"Poster","price":"14.90","img":"https://example.com/poster.jpg"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/admin/products", body)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_List(t *testing.T) {
	store := &creatingStoreService{}
	store.products = []domain.Product{{ID: "1", Name: "Mug", Price: 10}}
	h := NewAdminHandler(&store.stubStoreService)

	c, rec := newTestContext(t, http.MethodGet, "/v1/admin/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var view struct {
		Rows []struct {
			ID             string `json:"id"`
			FormattedPrice string `json:"formatted_price"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(view.Rows) != 1 || view.Rows[0].FormattedPrice != "10,00" {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestAdminHandler_Delete_NotFound(t *testing.T) {
	h := NewAdminHandler(&stubStoreService{})

	c, _ := newTestContext(t, http.MethodDelete, "/v1/admin/products/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
