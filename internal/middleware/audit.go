package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
)

// AuditContext attaches the caller's identity and request metadata to the
// request context so coordinator audit entries can be attributed. It runs
// after SessionAuth so the signed-in email is known.
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.WithAuditContext(c.Request.Context(), utils.GetAuditContextFromGin(c))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
