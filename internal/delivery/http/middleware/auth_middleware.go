package middleware

import (
	"strings"

	"customo/internal/delivery/http/response"
	"customo/internal/domain/entity"
	"customo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	// ContextKeyUser holds the authenticated *entity.User.
	ContextKeyUser = "authUser"
)

// AuthMiddleware provides middleware for bearer-token authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and resolves it to a live account.
// Both token verification and the identity-store lookup must succeed; any
// failure is a uniform 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Access denied. No token provided.")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireRole checks if the authenticated account carries a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: authentication information missing")
			}

			if user.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
