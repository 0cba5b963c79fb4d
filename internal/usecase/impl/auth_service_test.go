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
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_DefaultsToBuyer(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("password123").
		Return("$2a$12$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleBuyer, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Signup_ExplicitRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().
		Hash("password123").
		Return("$2a$12$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     "New Seller",
		Email:    "seller@example.com",
		Password: "password123",
		Role:     "seller",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, user.Role)
}

func TestAuthService_Signup_UnknownRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
		Role:     "superadmin",
	})
	assert.Nil(t, user)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
}

func TestAuthService_Signup_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Would-Be Admin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     "admin",
	})
	assert.Nil(t, user)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Email: "not-an-email"})
	assert.Nil(t, user)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     "New User",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "user@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "user@example.com",
			PasswordHash: "$2a$12$hash",
			Role:         entity.RoleBuyer,
		}, nil)

	fx.hasher.EXPECT().
		Check("password123", "$2a$12$hash").
		Return(true)

	fx.tokenService.EXPECT().
		Generate(userID, entity.RoleBuyer).
		Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "user@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$12$hash"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$12$hash").
		Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
