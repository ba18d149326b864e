package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/pkg/httpx"
	"github.com/Gunvolt24/rentshop_orders/pkg/validate"
)

// statusFor — HTTP-статус по доменной ошибке.
func statusFor(err error) int {
	switch {
	case errors.Is(err, validate.ErrInvalidOrder),
		errors.Is(err, domain.ErrInvalidNumberConfig),
		errors.Is(err, domain.ErrUnknownFormat),
		errors.Is(err, httpx.ErrBadID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOutletNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateOrderNumber):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRetryExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError — ответ с ошибкой; текст 5xx наружу не отдаём.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	status := statusFor(err)

	msg := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		h.log.Errorf(ctx, "%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		msg = "internal server error"
	case status == http.StatusServiceUnavailable:
		h.log.Warnf(ctx, "%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.Header("Retry-After", "1")
	}
	c.JSON(status, gin.H{"error": msg})
}
