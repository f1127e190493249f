package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/errors"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// RoleAuthConfig holds configuration for role authorization middleware
type RoleAuthConfig struct {
	// DefaultRole is assumed when no role header is provided
	DefaultRole domain.Role
}

// DefaultRoleAuthConfig grants viewer access to unidentified callers
func DefaultRoleAuthConfig() *RoleAuthConfig {
	return &RoleAuthConfig{DefaultRole: domain.RoleViewer}
}

// RoleAuth middleware extracts the caller's household role from headers
// and stores it in the request context. Authentication itself happens at
// the gateway; this service only enforces role capabilities.
func RoleAuth(config *RoleAuthConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRoleAuthConfig()
	}

	return func(c *gin.Context) {
		role := domain.Role(c.GetHeader(HeaderUserRole))
		switch role {
		case domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer:
		default:
			role = config.DefaultRole
		}

		c.Set(ContextKeyUserRole, role)

		ctx := logging.ContextWithUserID(c.Request.Context(), c.GetHeader("X-User-ID"))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserRole extracts the caller's role from the gin context
func GetUserRole(c *gin.Context) domain.Role {
	if val, exists := c.Get(ContextKeyUserRole); exists {
		if role, ok := val.(domain.Role); ok {
			return role
		}
	}
	return domain.RoleViewer
}

// RequireEditor rejects callers whose role cannot modify household data
func RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetUserRole(c).CanEdit() {
			AbortWithAppError(c, errors.ErrForbidden("editor access required"))
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers who are not household admins
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != domain.RoleAdmin {
			AbortWithAppError(c, errors.ErrForbidden("admin access required"))
			return
		}
		c.Next()
	}
}
