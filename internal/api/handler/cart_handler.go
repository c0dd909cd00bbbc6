package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/core/ports"
	"github.com/minimarket/storefront-system/internal/core/projection"
)

// CartHandler serves cart views and mutations.
type CartHandler struct {
	store ports.StoreService
}

func NewCartHandler(store ports.StoreService) *CartHandler {
	return &CartHandler{store: store}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// cartMutationResponse returns user feedback plus the re-projected cart, so
// the client can refresh its view from the same response.
type cartMutationResponse struct {
	Message string              `json:"message"`
	Cart    projection.CartView `json:"cart"`
}

// Get handles GET /v1/cart.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  projection.CartView
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart := h.store.Cart(c.Request().Context())
	return c.JSON(http.StatusOK, projection.ProjectCart(cart))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      200   {object}  cartMutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.store.AddToCart(c.Request().Context(), req.ProductID)
	if err != nil {
		return err
	}

	cart := h.store.Cart(c.Request().Context())
	return c.JSON(http.StatusOK, cartMutationResponse{
		Message: fmt.Sprintf("%s added to cart", result.ProductName),
		Cart:    projection.ProjectCart(cart),
	})
}

// RemoveItem handles DELETE /v1/cart/items/:id.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        id   path      string  true  "Product ID of the line to remove"
// @Success      200  {object}  cartMutationResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	result, err := h.store.RemoveFromCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	cart := h.store.Cart(c.Request().Context())
	return c.JSON(http.StatusOK, cartMutationResponse{
		Message: fmt.Sprintf("%s removed from cart", result.ProductName),
		Cart:    projection.ProjectCart(cart),
	})
}
