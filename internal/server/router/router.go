// Package router exposes the sale and credit operations over HTTP.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New wires the gin engine. Everything under /v1 requires an authenticated
// caller and runs with a deadline of timeout.
func New(sales sale.UseCase, credit ledger.UseCase, authn *auth.Authenticator, timeout time.Duration, log logger.ZapLogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &handler{sales: sales, credit: credit, logger: log.Named("http")}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(h.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1", requestTimeout(timeout), authn.Middleware())
	v1.POST("/sales", h.commitSale)
	v1.GET("/sales", h.listSales)
	v1.GET("/sales/:id", h.getSale)
	v1.POST("/customers/:id/payments", h.recordPayment)
	v1.GET("/customers/:id/standing", h.customerStanding)

	return r
}

func zapLoggerMiddleware(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
