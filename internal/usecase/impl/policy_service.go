package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

// policyService implements the ownership policy engine. It is the single
// place that decides whether an identity may act on a store or product.
//
// Gate order is fixed and each gate short-circuits:
//  1. role gate        - store ops need admin; product mutations need a
//     store-owning role
//  2. affiliation gate - product mutations need a managed store
//  3. inactive gate    - the managed store must be active
//  4. ownership gate   - update/delete targets must belong to the managed store
type policyService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// PolicyServiceParams holds dependencies for policyService, injected by Fx.
type PolicyServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewPolicyService is the constructor for policyService.
func NewPolicyService(params PolicyServiceParams) usecase.PolicyUsecase {
	return &policyService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *policyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize evaluates the decision table for one identity/action/resource
// triple. On ALLOW for create paths the returned scope carries the managed
// store and acting identity for the caller to stamp onto the new resource.
func (srv *policyService) Authorize(ctx context.Context, identity *entity.Identity, action usecase.Action, ref usecase.ResourceRef) (*usecase.Scope, error) {
	switch ref.Resource {
	case usecase.ResourceStore:
		return srv.authorizeStore(ctx, identity, action)
	case usecase.ResourceProduct:
		return srv.authorizeProduct(ctx, identity, action, ref)
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("unknown resource kind")
	}
}

// authorizeStore gates store management. It is admin-exclusive for every
// verb, independent of whether the admin manages a store of their own.
func (srv *policyService) authorizeStore(ctx context.Context, identity *entity.Identity, action usecase.Action) (*usecase.Scope, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("store authorization requires an authenticated identity")
	}

	if identity.Role != entity.RoleAdmin {
		srv.log(ctx).Warn("Store operation denied",
			slog.Any("actorID", identity.ID),
			slog.String("role", identity.Role.String()),
			slog.String("action", string(action)),
		)

		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return &usecase.Scope{ActorID: identity.ID}, nil
}

// authorizeProduct gates product operations. Reads are open to everyone;
// mutations walk the gate chain.
func (srv *policyService) authorizeProduct(ctx context.Context, identity *entity.Identity, action usecase.Action, ref usecase.ResourceRef) (*usecase.Scope, error) {
	if action == usecase.ActionRead {
		return &usecase.Scope{}, nil
	}

	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("product mutation requires an authenticated identity")
	}

	// Gate 1: role.
	if !identity.Role.CanOwnStore() {
		srv.log(ctx).Warn("Product mutation denied by role gate",
			slog.Any("actorID", identity.ID),
			slog.String("role", identity.Role.String()),
			slog.String("action", string(action)),
		)

		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	// Gate 2: store affiliation.
	if identity.ManagedStore == nil {
		return nil, errors.WithStack(domainerrors.ErrNoManagedStore)
	}

	// Gate 3: the store must be active.
	if !identity.ManagedStore.IsActive {
		return nil, errors.WithStack(domainerrors.ErrStoreInactive)
	}

	scope := &usecase.Scope{
		StoreID: identity.ManagedStore.ID,
		ActorID: identity.ID,
	}

	if action == usecase.ActionCreate {
		return scope, nil
	}

	// Gate 4: ownership match. A missing target is NotFound, not Forbidden,
	// so clients can tell "doesn't exist" from "exists but not yours".
	product, err := srv.productRepo.FindByID(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to load product for ownership check")
	}

	if product.StoreID != identity.ManagedStore.ID {
		srv.log(ctx).Warn("Product mutation denied by ownership gate",
			slog.Any("actorID", identity.ID),
			slog.Any("productID", product.ID),
			slog.Any("productStoreID", product.StoreID),
			slog.Any("managedStoreID", identity.ManagedStore.ID),
		)

		return nil, errors.WithStack(domainerrors.ErrOwnershipMismatch)
	}

	return scope, nil
}
