package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/store-products", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))

	c, rec := newAuthContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))

	c, rec := newAuthContext("Basic abc123")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthenticate_ResolverRejects(t *testing.T) {
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	identityUC.EXPECT().Resolve(mock.Anything, "bad-token").
		Return(nil, domainerrors.ErrTokenInvalid)
	m := NewAuthMiddleware(identityUC)

	c, rec := newAuthContext("Bearer bad-token")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Role: entity.RoleSeller}
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	identityUC.EXPECT().Resolve(mock.Anything, "good-token").Return(identity, nil)
	m := NewAuthMiddleware(identityUC)

	c, rec := newAuthContext("Bearer good-token")

	var seen *entity.Identity
	next := func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, identity.ID, seen.ID)
}

func TestRequireRole_Mismatch(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))

	c, rec := newAuthContext("")
	deliverycontext.SetIdentity(c, &entity.Identity{ID: uuid.New(), Role: entity.RoleSeller})

	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "require 'admin' role")
}

func TestRequireRole_NoIdentity(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))

	c, rec := newAuthContext("")

	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "identity missing")
}

func TestRequireRole_Allows(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockIdentityUsecase(t))

	c, rec := newAuthContext("")
	deliverycontext.SetIdentity(c, &entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin})

	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
