package rest

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/httpx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Handler — HTTP-обработчики поверх прикладного сервиса.
type Handler struct {
	service ports.OrderService
	log     ports.Logger
	timeout time.Duration // 0 — без ограничения на обработку
}

func NewHandler(service ports.OrderService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — gin.Engine со всеми маршрутами.
// otelServiceName пустой — трейсинг запросов выключен; staticDir пустой — без статики.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	outlets := r.Group("/outlets/:id")
	outlets.POST("/order-numbers", h.generateOrderNumber)
	outlets.GET("/stats", h.outletStats)
	outlets.GET("/orders", h.listOutletOrders)

	r.POST("/orders", h.createOrder)
	r.GET("/orders/:number", h.getOrder)
	r.GET("/order-numbers/validate", h.validateOrderNumber)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
