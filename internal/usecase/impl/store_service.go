package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface, including the composite
// seller provisioning workflow.
type storeService struct {
	policy    usecase.PolicyUsecase
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	Policy    usecase.PolicyUsecase
	UserRepo  repository.UserRepository
	StoreRepo repository.StoreRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		policy:    params.Policy,
		userRepo:  params.UserRepo,
		storeRepo: params.StoreRepo,
		hasher:    params.Hasher,
		validate:  newValidator(),
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storeService) authorize(ctx context.Context, identity *entity.Identity, action usecase.Action, id uuid.UUID) error {
	_, err := srv.policy.Authorize(ctx, identity, action, usecase.ResourceRef{Resource: usecase.ResourceStore, ID: id})

	return err
}

// Create provisions a standalone store for an existing identity.
func (srv *storeService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}

	if fields := collectInvalidFields(srv.validate, input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	// ownerId must reference an existing identity.
	if _, err := srv.userRepo.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.
				WithMessage("ownerId does not reference an existing user")
		}

		return nil, errors.Wrap(err, "failed to verify store owner")
	}

	store := &entity.Store{
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
		Address:     input.Address,
		Contact:     input.Contact,
		OwnerID:     input.OwnerID,
		IsActive:    true,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.Any("ownerID", store.OwnerID))

	return store, nil
}

// List returns all stores. Admin-only, like every store operation.
func (srv *storeService) List(ctx context.Context, identity *entity.Identity) ([]*entity.Store, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionRead, uuid.Nil); err != nil {
		return nil, err
	}

	stores, err := srv.storeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// Get returns a single store by ID.
func (srv *storeService) Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Store, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionRead, id); err != nil {
		return nil, err
	}

	return srv.findStore(ctx, id)
}

// Update applies a partial update to a store.
func (srv *storeService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionUpdate, id); err != nil {
		return nil, err
	}

	store, err := srv.findStore(ctx, id)
	if err != nil {
		return nil, err
	}

	applyStoreUpdate(store, input)

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// Deactivate soft-disables a store by flipping isActive. The store and its
// products stay in storage; product creation against it is denied until it
// is reactivated through update.
func (srv *storeService) Deactivate(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Store, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionUpdate, id); err != nil {
		return nil, err
	}

	store, err := srv.findStore(ctx, id)
	if err != nil {
		return nil, err
	}

	store.IsActive = false

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate store")
	}

	srv.log(ctx).Info("Store deactivated", slog.Any("storeID", store.ID))

	return store, nil
}

// Delete hard-deletes a store.
func (srv *storeService) Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	if err := srv.authorize(ctx, identity, usecase.ActionDelete, id); err != nil {
		return err
	}

	if err := srv.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errors.WithStack(domainerrors.ErrStoreNotFound)
		}

		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Store deleted", slog.Any("storeID", id))

	return nil
}

// ProvisionSeller creates a seller identity and its store, in that order.
// The two writes are independent: when the store write fails the seller
// stays behind without a store, and the caller retries store creation
// separately. There is no compensating delete.
func (srv *storeService) ProvisionSeller(ctx context.Context, identity *entity.Identity, input *usecase.ProvisionSellerInput) (*usecase.ProvisionSellerOutput, error) {
	if err := srv.authorize(ctx, identity, usecase.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}

	if fields := srv.missingProvisionFields(input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.WithStack(domainerrors.ErrEmailTaken)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check seller email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash seller password")
	}

	seller := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		// Role is fixed here; this path can never mint an admin.
		Role:      entity.RoleSeller,
		Phone:     input.Contact.Phone,
		Addresses: []entity.Address{input.Address},
	}

	if err := srv.userRepo.Create(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to create seller")
	}

	store := &entity.Store{
		Name:        input.StoreName,
		Description: input.Description,
		Address:     input.Address,
		Contact:     input.Contact,
		OwnerID:     seller.ID,
		IsActive:    true,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		// Known gap: the seller was already written and is left without a
		// store. Surface the failure instead of rolling back.
		srv.log(ctx).Error("Seller provisioned without store",
			slog.Any("sellerID", seller.ID),
			slog.String("storeName", input.StoreName),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create store for seller")
	}

	srv.log(ctx).Info("Seller provisioned",
		slog.Any("sellerID", seller.ID),
		slog.Any("storeID", store.ID),
	)

	return &usecase.ProvisionSellerOutput{
		UserName:  seller.Name,
		Email:     seller.Email,
		StoreName: store.Name,
	}, nil
}

// missingProvisionFields aggregates every missing provisioning field so the
// caller sees them all in one response.
func (srv *storeService) missingProvisionFields(input *usecase.ProvisionSellerInput) []string {
	fields := collectInvalidFields(srv.validate, input)
	if input.Contact.Phone == "" {
		fields = append(fields, "contact.phone")
	}
	if input.Address == (entity.Address{}) {
		fields = append(fields, "address")
	}

	return fields
}

func (srv *storeService) findStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
		}

		return nil, errors.Wrap(err, "failed to load store")
	}

	return store, nil
}

func applyStoreUpdate(store *entity.Store, input *usecase.UpdateStoreInput) {
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.Contact != nil {
		store.Contact = *input.Contact
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
}
