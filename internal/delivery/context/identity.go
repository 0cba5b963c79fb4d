package context

import (
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the resolved identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the resolved identity from echo.Context.
// Returns nil when the request was not authenticated.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}
