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

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface. It turns a bearer
// token into a role-tagged identity with its store affiliation resolved.
type identityService struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	StoreRepo    repository.StoreRepository
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		tokenService: params.TokenService,
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve validates the token, loads the account it names, and attaches the
// managed-store affiliation for store-owning roles. The token's role claim is
// informational only; the stored account record is authoritative.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		srv.log(ctx).Warn("Token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.Any("userID", claims.UserID))

			return nil, domainerrors.ErrUnauthenticated.WrapMessage("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for token subject")
	}

	// The password hash stays behind: Identity has no field for it.
	identity := &entity.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	if user.Role.CanOwnStore() {
		store, err := srv.storeRepo.FindByOwner(ctx, user.ID)
		switch {
		case err == nil:
			identity.ManagedStore = &entity.ManagedStore{
				ID:       store.ID,
				Name:     store.Name,
				LogoURL:  store.LogoURL,
				IsActive: store.IsActive,
			}
		case errors.Is(err, repository.ErrStoreNotFound):
			// Unaffiliated admin/seller is a valid, if restricted, state.
		default:
			return nil, errors.Wrap(err, "failed to resolve store affiliation")
		}
	}

	return identity, nil
}
