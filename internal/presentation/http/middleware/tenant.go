package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraRepo "github.com/autoserve360/pos/internal/infrastructure/repository"
	"github.com/autoserve360/pos/internal/presentation/http/dto/response"
)

// TenantHeader carries the tenant identity on every scoped request.
const TenantHeader = "X-Tenant-ID"

// TenantMiddleware resolves the tenant from the X-Tenant-ID header and
// places it in both the Gin context and the request context, where the
// repository tenant scope picks it up. Requests without the header are
// rejected before reaching any handler.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			response.BadRequest(c, "Tenant context required")
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid tenant context")
			c.Abort()
			return
		}

		c.Set("tenant_id", tenantID)

		ctx := infraRepo.WithTenant(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenantID retrieves the tenant ID from gin context
func GetTenantID(c *gin.Context) uuid.UUID {
	tenantID, exists := c.Get("tenant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := tenantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
