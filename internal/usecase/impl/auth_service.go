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
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface for signup and login.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     newValidator(),
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. Role defaults to buyer and must name a
// known, openly registrable role. Admin accounts are minted by the seed tool
// only; this path rejects the admin role outright.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	if fields := collectInvalidFields(srv.validate, input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	role := entity.Role(input.Role)
	if input.Role == "" {
		role = entity.RoleBuyer
	}
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.
			WithMessage("Missing or invalid fields: role")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.WithStack(domainerrors.ErrEmailTaken)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		Phone:        input.Phone,
		Addresses:    input.Addresses,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			return nil, errors.WithStack(domainerrors.ErrEmailTaken)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered",
		slog.Any("userID", user.ID),
		slog.String("role", user.Role.String()),
	)

	user.PasswordHash = ""

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password collapse into the same error so callers cannot probe which
// addresses are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if fields := collectInvalidFields(srv.validate, input); len(fields) > 0 {
		return nil, validationError(fields)
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	user.PasswordHash = ""

	return &usecase.LoginOutput{Token: token, User: user}, nil
}
