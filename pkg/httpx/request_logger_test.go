package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/rentshop_orders/pkg/httpx"
)

type record struct {
	level    string
	msg      string
	outletID int64
}

type recLogger struct {
	mu   sync.Mutex
	recs []record
}

func (l *recLogger) add(ctx context.Context, level, format string, args ...any) {
	id, _ := ctxmeta.OutletIDFromContext(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recs = append(l.recs, record{level: level, msg: fmt.Sprintf(format, args...), outletID: id})
}

func (l *recLogger) Infof(ctx context.Context, f string, a ...any)  { l.add(ctx, "info", f, a...) }
func (l *recLogger) Warnf(ctx context.Context, f string, a ...any)  { l.add(ctx, "warn", f, a...) }
func (l *recLogger) Errorf(ctx context.Context, f string, a ...any) { l.add(ctx, "error", f, a...) }

func newLoggedRouter(log *recLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/outlets/:id/stats", func(c *gin.Context) {
		if _, ok := ctxmeta.OutletIDFromContext(c.Request.Context()); !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.Status(http.StatusOK)
	})
	r.GET("/orders/:number", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.POST("/orders", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func TestRequestLogger_OutletIDAndLevels(t *testing.T) {
	log := &recLogger{}
	r := newLoggedRouter(log)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/ping"},
		{http.MethodGet, "/outlets/7/stats"},
		{http.MethodGet, "/orders/ORD-001-0001"},
		{http.MethodPost, "/orders"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, http.NoBody))
	}

	if len(log.recs) != 3 {
		t.Fatalf("want 3 records (/ping skipped), got %d: %+v", len(log.recs), log.recs)
	}
	if got := log.recs[0]; got.level != "info" || got.outletID != 7 {
		t.Fatalf("outlet route: want info with outlet_id=7, got %+v", got)
	}
	if got := log.recs[1]; got.level != "warn" || got.outletID != 0 {
		t.Fatalf("404: want warn without outlet, got %+v", got)
	}
	if got := log.recs[2]; got.level != "error" {
		t.Fatalf("500: want error, got %+v", got)
	}
}
