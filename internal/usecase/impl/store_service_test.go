package impl

import (
	"context"
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	policy    *mockUsecase.MockPolicyUsecase
	userRepo  *mockRepo.MockUserRepository
	storeRepo *mockRepo.MockStoreRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	policy := mockUsecase.NewMockPolicyUsecase(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewStoreService(StoreServiceParams{
		Policy:    policy,
		UserRepo:  userRepo,
		StoreRepo: storeRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:   service,
		policy:    policy,
		userRepo:  userRepo,
		storeRepo: storeRepo,
		hasher:    hasher,
	}
}

func (fx storeServiceFixtures) expectAuthorize(ctx context.Context, identity *entity.Identity, action usecase.Action, id uuid.UUID, err error) {
	var scope *usecase.Scope
	if err == nil {
		scope = &usecase.Scope{ActorID: identity.ID}
	}

	fx.policy.EXPECT().
		Authorize(ctx, identity, action, usecase.ResourceRef{Resource: usecase.ResourceStore, ID: id}).
		Return(scope, err)
}

func validProvisionInput() *usecase.ProvisionSellerInput {
	return &usecase.ProvisionSellerInput{
		Name:        "Jordan Seller",
		Email:       "jordan@example.com",
		Password:    "s3cret-pass",
		Description: "Handmade ceramics",
		StoreName:   "Clay Corner",
		Contact:     entity.Contact{Email: "shop@example.com", Phone: "+46701234567"},
		Address:     entity.Address{Street: "1 Pottery Ln", City: "Gothenburg", Country: "Sweden"},
	}
}

func TestStoreService_Create_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	ownerID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Role: entity.RoleSeller}, nil)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	store, err := fx.service.Create(ctx, admin, &usecase.CreateStoreInput{
		Name:        "Clay Corner",
		Description: "Handmade ceramics",
		OwnerID:     ownerID,
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, ownerID, store.OwnerID)
	assert.True(t, store.IsActive)
}

func TestStoreService_Create_NonAdminDenied(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	seller := sellerIdentity(activeManagedStore())

	fx.policy.EXPECT().
		Authorize(ctx, seller, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceStore, ID: uuid.Nil}).
		Return(nil, domainerrors.ErrForbidden)

	store, err := fx.service.Create(ctx, seller, &usecase.CreateStoreInput{})
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_Create_UnknownOwner(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	ownerID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(nil, repository.ErrUserNotFound)

	store, err := fx.service.Create(ctx, admin, &usecase.CreateStoreInput{
		Name:        "Clay Corner",
		Description: "Handmade ceramics",
		OwnerID:     ownerID,
	})
	assert.Nil(t, store)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
}

func TestStoreService_Update_PartialChanges(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	storeID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionUpdate, storeID, nil)

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, Name: "Old", Description: "Old desc", IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	newName := "New Name"
	store, err := fx.service.Update(ctx, admin, storeID, &usecase.UpdateStoreInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", store.Name)
	assert.Equal(t, "Old desc", store.Description)
}

func TestStoreService_Deactivate_FlipsFlag(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	storeID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionUpdate, storeID, nil)

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, IsActive: true}, nil)

	fx.storeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			assert.False(t, store.IsActive)
		}).
		Return(nil)

	store, err := fx.service.Deactivate(ctx, admin, storeID)
	require.NoError(t, err)
	assert.False(t, store.IsActive)
}

func TestStoreService_Delete_NotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	storeID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionDelete, storeID, nil)

	fx.storeRepo.EXPECT().
		Delete(ctx, storeID).
		Return(repository.ErrStoreNotFound)

	err := fx.service.Delete(ctx, admin, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_ProvisionSeller_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	input := validProvisionInput()
	sellerID := uuid.New()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$12$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = sellerID
			assert.Equal(t, entity.RoleSeller, user.Role)
			assert.Equal(t, "$2a$12$hash", user.PasswordHash)
		}).
		Return(nil)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			assert.Equal(t, sellerID, store.OwnerID)
			assert.True(t, store.IsActive)
		}).
		Return(nil)

	out, err := fx.service.ProvisionSeller(ctx, admin, input)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, input.Name, out.UserName)
	assert.Equal(t, input.Email, out.Email)
	assert.Equal(t, input.StoreName, out.StoreName)
}

func TestStoreService_ProvisionSeller_ReportsAllMissingFields(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	out, err := fx.service.ProvisionSeller(ctx, admin, &usecase.ProvisionSellerInput{
		Name:  "Jordan Seller",
		Email: "jordan@example.com",
	})
	assert.Nil(t, out)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "description")
	assert.Contains(t, err.Error(), "store_name")
	assert.Contains(t, err.Error(), "contact.phone")
	assert.Contains(t, err.Error(), "address")
}

func TestStoreService_ProvisionSeller_EmailTaken(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	input := validProvisionInput()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	out, err := fx.service.ProvisionSeller(ctx, admin, input)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestStoreService_ProvisionSeller_StoreFailureLeavesSeller(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	admin := adminIdentity()
	input := validProvisionInput()

	fx.expectAuthorize(ctx, admin, usecase.ActionCreate, uuid.Nil, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$12$hash", nil)

	// The seller write succeeds, then the store write fails. No rollback.
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(errors.New("duplicate key value violates unique constraint"))

	out, err := fx.service.ProvisionSeller(ctx, admin, input)
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create store for seller")
}
