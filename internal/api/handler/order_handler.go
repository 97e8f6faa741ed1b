package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/api/metrics"
	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// OrderHandler handles order placement and the admin list view.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	ProductID string `json:"product"  validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Items      []orderItemRequest `json:"products"`
	TotalPrice float64            `json:"totalPrice"`
}

type placeOrderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

// Place creates an order for the authenticated user. The total price is
// stored as supplied; an optional Idempotency-Key header makes retries
// return the original order.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replay guard for retried submissions"
// @Param        body             body      placeOrderRequest  true   "Line items and total"
// @Success      201              {object}  placeOrderResponse
// @Failure      400              {object}  messageResponse
// @Failure      401              {object}  messageResponse
// @Failure      500              {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	result, err := h.orderService.Place(c.Request().Context(), ports.PlaceOrderInput{
		UserID:         userID,
		Items:          items,
		TotalPrice:     req.TotalPrice,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error placing order"})
		}
	}

	if result.Replayed {
		metrics.OrderReplaysTotal.Inc()
	} else {
		metrics.OrdersPlacedTotal.Inc()
	}

	return c.JSON(http.StatusCreated, placeOrderResponse{
		Message: "Order placed successfully!",
		Order:   result.Order,
	})
}

// List returns every order with user and product references resolved.
// Admin only.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.OrderDetail
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error fetching orders"})
	}
	return c.JSON(http.StatusOK, orders)
}
