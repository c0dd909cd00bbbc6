package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/core/ports"
	"github.com/minimarket/storefront-system/internal/core/projection"
)

// CatalogHandler serves the public product views.
type CatalogHandler struct {
	store ports.StoreService
}

func NewCatalogHandler(store ports.StoreService) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// Grid handles GET /v1/products.
//
// @Summary      List the product catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  projection.ProductGridView
// @Router       /v1/products [get]
func (h *CatalogHandler) Grid(c echo.Context) error {
	products := h.store.Products(c.Request().Context())
	return c.JSON(http.StatusOK, projection.ProjectProductGrid(products))
}

// Detail handles GET /v1/products/:id.
//
// @Summary      Get a single product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  projection.DetailView
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Detail(c echo.Context) error {
	product, err := h.store.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projection.ProjectProductDetail(product))
}
