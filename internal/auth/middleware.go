package auth

import (
	"net/http"

	"github.com/fekuna/omnipos-sales-service/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// Middleware is the gin counterpart of UnaryInterceptor.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.resolve(c.GetHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid credentials"})
			return
		}

		ctx := WithUser(c.Request.Context(), u)
		if lang := c.GetHeader("Accept-Language"); lang != "" {
			ctx = i18n.WithLanguage(ctx, lang)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
