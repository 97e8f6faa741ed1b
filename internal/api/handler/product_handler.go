package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/api/metrics"
	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// ProductHandler handles catalog reads and admin-only writes. The admin
// gate runs in middleware; handlers here assume it already passed for
// the write routes.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	ImageURL string  `json:"imageUrl"`
}

// List returns the whole catalog. Public, no pagination.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  messageResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error fetching products"})
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a catalog entry. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error creating product"})
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update replaces a catalog entry's fields. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error updating product"})
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a catalog entry. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error deleting product"})
	}
	return c.NoContent(http.StatusNoContent)
}
