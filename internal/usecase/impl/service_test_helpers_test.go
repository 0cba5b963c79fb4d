package impl

import (
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{
		ID:    uuid.New(),
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}
}

func buyerIdentity() *entity.Identity {
	return &entity.Identity{
		ID:    uuid.New(),
		Name:  "Buyer",
		Email: "buyer@example.com",
		Role:  entity.RoleBuyer,
	}
}

func sellerIdentity(store *entity.ManagedStore) *entity.Identity {
	return &entity.Identity{
		ID:           uuid.New(),
		Name:         "Seller",
		Email:        "seller@example.com",
		Role:         entity.RoleSeller,
		ManagedStore: store,
	}
}

func activeManagedStore() *entity.ManagedStore {
	return &entity.ManagedStore{
		ID:       uuid.New(),
		Name:     "Test Store",
		IsActive: true,
	}
}

// requireAppError asserts the error maps to the given status and business code.
func requireAppError(t *testing.T, err error, httpCode int, errorCode string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httpCode, appErr.HTTPCode())
	assert.Equal(t, errorCode, appErr.ErrorCode())
}
