package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lg/nutrition-calculator-api/internal/nutrition"
)

// Handler holds shared dependencies (metrics) for all route handlers.
type Handler struct {
	metrics  *metrics
	gatherer prometheus.Gatherer // Source for GET /metrics
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestIDHeader is echoed back on every response.
const requestIDHeader = "X-Request-ID"

// requestID reuses the caller's X-Request-ID or assigns a fresh uuid, and
// stores it on the context as "request_id".
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs one line per request once the handler chain is done.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] %s %s %d %s id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Round(time.Microsecond), c.GetString("request_id"))
	}
}

// recoverUnexpected turns a panic into a generic 500. The panic value is
// logged but never sent to the client.
func recoverUnexpected(c *gin.Context, recovered any) {
	log.Printf("[recovery] id=%s panic: %v", c.GetString("request_id"), recovered)
	apiError(c, http.StatusInternalServerError, nutrition.MsgUnexpected)
	c.Abort()
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware and all routes.
func newRouter(h *Handler, cfg config) (*gin.Engine, error) {
	router := gin.New()
	// A nil slice trusts no proxy, so ClientIP is always the socket peer.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	router.Use(requestID(), requestLogger(), gin.CustomRecovery(recoverUnexpected))
	h.registerRoutes(router)
	return router, nil
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/nutrition")
	api.GET("/activity-levels", h.getActivityLevels)
	api.POST("/estimate", h.postEstimate)
}

// health reports liveness. GET /healthz.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
