package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/pkg/httpx"
	"github.com/Gunvolt24/rentshop_orders/pkg/validate"
)

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

// POST /outlets/:id/order-numbers — тело (необязательное) переопределяет настройки нумерации.
func (h *Handler) generateOrderNumber(c *gin.Context) {
	outletID, err := httpx.ParseID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var opts *domain.NumberOptions
	var body domain.NumberOptions
	switch err := c.ShouldBindJSON(&body); {
	case err == nil:
		opts = &body
	case errors.Is(err, io.EOF):
	default:
		h.writeError(c, fmt.Errorf("%w: invalid json: %w", validate.ErrInvalidOrder, err))
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.GenerateOrderNumber(ctx, outletID, opts)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /outlets/:id/stats
func (h *Handler) outletStats(c *gin.Context) {
	outletID, err := httpx.ParseID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	stats, err := h.service.OutletStats(ctx, outletID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /outlets/:id/orders?limit&offset
func (h *Handler) listOutletOrders(c *gin.Context) {
	outletID, err := httpx.ParseID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.service.OrdersByOutlet(ctx, outletID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// POST /orders — строгий JSON, как и в Kafka.
func (h *Handler) createOrder(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeError(c, fmt.Errorf("%w: invalid json: %w", validate.ErrInvalidOrder, err))
		return
	}
	req, err := validate.DecodeCreateOrderRequest(raw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.CreateOrder(ctx, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /orders/:number
func (h *Handler) getOrder(c *gin.Context) {
	number := c.Param("number")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.GetOrder(ctx, number)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /order-numbers/validate?number=
func (h *Handler) validateOrderNumber(c *gin.Context) {
	number, ok := c.GetQuery("number")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter number is required"})
		return
	}
	c.JSON(http.StatusOK, h.service.ValidateOrderNumber(number))
}
