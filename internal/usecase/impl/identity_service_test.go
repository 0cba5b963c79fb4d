package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity resolution tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	tokenService *mockService.MockTokenService
	userRepo     *mockRepo.MockUserRepository
	storeRepo    *mockRepo.MockStoreRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	tokenService := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewIdentityService(IdentityServiceParams{
		TokenService: tokenService,
		UserRepo:     userRepo,
		StoreRepo:    storeRepo,
		Logger:       newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:      service,
		tokenService: tokenService,
		userRepo:     userRepo,
		storeRepo:    storeRepo,
	}
}

func TestIdentityService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenService.EXPECT().
		Validate("bad-token").
		Return(nil, errors.New("signature is invalid"))

	identity, err := fx.service.Resolve(context.Background(), "bad-token")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_Resolve_UserGone(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleBuyer}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	identity, err := fx.service.Resolve(ctx, "token")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestIdentityService_Resolve_Buyer_SkipsStoreLookup(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleBuyer}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			Name:         "Buyer",
			Email:        "buyer@example.com",
			PasswordHash: "$2a$12$hash",
			Role:         entity.RoleBuyer,
		}, nil)

	identity, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, entity.RoleBuyer, identity.Role)
	assert.Nil(t, identity.ManagedStore)
}

func TestIdentityService_Resolve_Seller_AttachesStore(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleSeller}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Seller", Email: "seller@example.com", Role: entity.RoleSeller}, nil)

	fx.storeRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(&entity.Store{ID: storeID, Name: "Gadget Hub", OwnerID: userID, IsActive: true}, nil)

	identity, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	require.NotNil(t, identity.ManagedStore)
	assert.Equal(t, storeID, identity.ManagedStore.ID)
	assert.Equal(t, "Gadget Hub", identity.ManagedStore.Name)
	assert.True(t, identity.ManagedStore.IsActive)
}

func TestIdentityService_Resolve_Seller_WithoutStore(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleSeller}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleSeller}, nil)

	fx.storeRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(nil, repository.ErrStoreNotFound)

	identity, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, identity.ManagedStore)
}

func TestIdentityService_Resolve_RoleComesFromRecord(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The token claims buyer, but the stored record says seller. The record wins.
	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleBuyer}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleSeller}, nil)

	fx.storeRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(nil, repository.ErrStoreNotFound)

	identity, err := fx.service.Resolve(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, identity.Role)
}

func TestIdentityService_Resolve_StoreLookupError(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Validate("token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleSeller}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleSeller}, nil)

	fx.storeRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(nil, errors.New("database error"))

	identity, err := fx.service.Resolve(ctx, "token")
	assert.Nil(t, identity)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve store affiliation")
}
