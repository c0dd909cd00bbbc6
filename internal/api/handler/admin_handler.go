package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/core/ports"
	"github.com/minimarket/storefront-system/internal/core/projection"
)

// AdminHandler serves the product management panel. All routes are gated by
// the Auth and RBAC middleware.
type AdminHandler struct {
	store ports.StoreService
}

func NewAdminHandler(store ports.StoreService) *AdminHandler {
	return &AdminHandler{store: store}
}

// Price is accepted as a string: it arrives from a form field and the Store
// decides whether it parses, so "abc" is a validation rejection, not a bind
// failure.
type createProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Img         string `json:"img" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
}

type deleteProductResponse struct {
	Message string `json:"message"`
}

// List handles GET /v1/admin/products.
//
// @Summary      List products for management
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projection.AdminListView
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/products [get]
func (h *AdminHandler) List(c echo.Context) error {
	products := h.store.Products(c.Request().Context())
	return c.JSON(http.StatusOK, projection.ProjectAdminList(products))
}

// Create handles POST /v1/admin/products.
//
// @Summary      Add a product to the catalog
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/products [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.store.AddProduct(c.Request().Context(), ports.AddProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Img:         req.Img,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Img:         product.Img,
		Description: product.Description,
	})
}

// Delete handles DELETE /v1/admin/products/:id.
//
// @Summary      Remove a product from the catalog
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  deleteProductResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/products/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	result, err := h.store.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteProductResponse{
		Message: fmt.Sprintf("%s removed from catalog", result.ProductName),
	})
}
