package impl

import (
	"context"
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// policyServiceFixtures holds all test dependencies for policy engine tests.
type policyServiceFixtures struct {
	service     usecase.PolicyUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestPolicyService(t *testing.T) policyServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewPolicyService(PolicyServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return policyServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestPolicyService_Store_RequiresAuthentication(t *testing.T) {
	fx := createTestPolicyService(t)

	scope, err := fx.service.Authorize(context.Background(), nil, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceStore})
	assert.Nil(t, scope)
	requireAppError(t, err, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestPolicyService_Store_AdminOnly(t *testing.T) {
	fx := createTestPolicyService(t)
	ctx := context.Background()
	ref := usecase.ResourceRef{Resource: usecase.ResourceStore, ID: uuid.New()}

	for _, identity := range []*entity.Identity{
		buyerIdentity(),
		sellerIdentity(activeManagedStore()),
	} {
		scope, err := fx.service.Authorize(ctx, identity, usecase.ActionUpdate, ref)
		assert.Nil(t, scope)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestPolicyService_Store_AdminAllowed(t *testing.T) {
	fx := createTestPolicyService(t)

	admin := adminIdentity()
	scope, err := fx.service.Authorize(context.Background(), admin, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceStore})
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, admin.ID, scope.ActorID)
}

func TestPolicyService_Product_ReadIsPublic(t *testing.T) {
	fx := createTestPolicyService(t)

	scope, err := fx.service.Authorize(context.Background(), nil, usecase.ActionRead, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: uuid.New()})
	require.NoError(t, err)
	assert.NotNil(t, scope)
}

func TestPolicyService_Product_MutationRequiresAuthentication(t *testing.T) {
	fx := createTestPolicyService(t)

	scope, err := fx.service.Authorize(context.Background(), nil, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	assert.Nil(t, scope)
	requireAppError(t, err, http.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestPolicyService_Product_RoleGate(t *testing.T) {
	fx := createTestPolicyService(t)

	scope, err := fx.service.Authorize(context.Background(), buyerIdentity(), usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	assert.Nil(t, scope)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPolicyService_Product_AffiliationGate(t *testing.T) {
	fx := createTestPolicyService(t)

	scope, err := fx.service.Authorize(context.Background(), sellerIdentity(nil), usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	assert.Nil(t, scope)
	assert.ErrorIs(t, err, domainerrors.ErrNoManagedStore)
}

func TestPolicyService_Product_InactiveGate(t *testing.T) {
	fx := createTestPolicyService(t)

	store := activeManagedStore()
	store.IsActive = false

	scope, err := fx.service.Authorize(context.Background(), sellerIdentity(store), usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	assert.Nil(t, scope)
	assert.ErrorIs(t, err, domainerrors.ErrStoreInactive)
}

func TestPolicyService_Product_CreateStampsScope(t *testing.T) {
	fx := createTestPolicyService(t)

	store := activeManagedStore()
	seller := sellerIdentity(store)

	scope, err := fx.service.Authorize(context.Background(), seller, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, store.ID, scope.StoreID)
	assert.Equal(t, seller.ID, scope.ActorID)
}

func TestPolicyService_Product_AdminWithStoreCanMutate(t *testing.T) {
	fx := createTestPolicyService(t)

	store := activeManagedStore()
	admin := adminIdentity()
	admin.ManagedStore = store

	scope, err := fx.service.Authorize(context.Background(), admin, usecase.ActionCreate, usecase.ResourceRef{Resource: usecase.ResourceProduct})
	require.NoError(t, err)
	assert.Equal(t, store.ID, scope.StoreID)
}

func TestPolicyService_Product_UpdateMissingTargetIsNotFound(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	productID := uuid.New()
	seller := sellerIdentity(activeManagedStore())

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	scope, err := fx.service.Authorize(ctx, seller, usecase.ActionUpdate, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID})
	assert.Nil(t, scope)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestPolicyService_Product_OwnershipGate(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	productID := uuid.New()
	seller := sellerIdentity(activeManagedStore())

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: uuid.New()}, nil)

	scope, err := fx.service.Authorize(ctx, seller, usecase.ActionDelete, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID})
	assert.Nil(t, scope)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipMismatch)
}

func TestPolicyService_Product_UpdateOwnProductAllowed(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	productID := uuid.New()
	store := activeManagedStore()
	seller := sellerIdentity(store)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: store.ID}, nil)

	scope, err := fx.service.Authorize(ctx, seller, usecase.ActionUpdate, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID})
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, store.ID, scope.StoreID)
	assert.Equal(t, seller.ID, scope.ActorID)
}

func TestPolicyService_Product_OwnershipLookupError(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	productID := uuid.New()
	seller := sellerIdentity(activeManagedStore())

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, errors.New("database error"))

	scope, err := fx.service.Authorize(ctx, seller, usecase.ActionUpdate, usecase.ResourceRef{Resource: usecase.ResourceProduct, ID: productID})
	assert.Nil(t, scope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load product for ownership check")
}
