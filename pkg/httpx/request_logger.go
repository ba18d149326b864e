package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
)

// OutletParam — имя параметра пути с id торговой точки.
const OutletParam = "id"

// RequestLogger — middleware для логирования HTTP-запросов.
// Для маршрутов /outlets/:id кладёт outlet_id в контекст до обработчика,
// чтобы он попал во все записи лога запроса.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if id, err := strconv.ParseInt(c.Param(OutletParam), 10, 64); err == nil {
			c.Request = c.Request.WithContext(ctxmeta.WithOutletID(c.Request.Context(), id))
		}

		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		logf := log.Infof
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}

		logf(ctx,
			"request trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			tr, sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
