package middleware

import (
	"net/http"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// role checks. Authentication goes through the identity resolver, so the
// stored account record, not the token claims, decides the role.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// Authenticate is the core middleware function that resolves the bearer token
// into an identity and attaches it to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		identity, err := m.identityUC.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Error(c, http.StatusForbidden, "Permission denied: identity missing")
			}

			if identity.Role != requiredRole {
				return response.Error(c, http.StatusForbidden, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
