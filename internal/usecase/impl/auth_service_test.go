package impl

import (
	"context"
	"testing"

	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	mockSvc "todolist/internal/mocks/service"
	"todolist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	repoFixtures
	service usecase.AuthUsecase
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		repoFixtures: repos,
		service:      NewAuthService(repos.txManager, hasher, tokens, newDiscardLogger()),
		hasher:       hasher,
		tokens:       tokens,
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	}
}

func TestAuthService_Resolve_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := testUser()

	fx.tokens.EXPECT().Decode("token").Return(map[string]any{"sub": user.Email, "exp": float64(1)}, nil)
	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	resolved, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestAuthService_Resolve_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	resolved, err := fx.service.Resolve(context.Background(), "")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
}

func TestAuthService_Resolve_UndecodableToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokens.EXPECT().Decode("expired").Return(nil, errors.Wrap(service.ErrInvalidToken, "token has expired"))

	resolved, err := fx.service.Resolve(context.Background(), "expired")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
}

func TestAuthService_Resolve_BadSubject(t *testing.T) {
	tests := map[string]map[string]any{
		"missing subject":    {"exp": float64(1)},
		"empty subject":      {"sub": ""},
		"non-string subject": {"sub": float64(42)},
	}

	for name, claims := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestAuthService(t)
			fx.tokens.EXPECT().Decode("token").Return(claims, nil)

			resolved, err := fx.service.Resolve(context.Background(), "token")

			assert.Nil(t, resolved)
			assert.True(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
		})
	}
}

func TestAuthService_Resolve_SubjectNoLongerExists(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokens.EXPECT().Decode("token").Return(map[string]any{"sub": "gone@example.com"}, nil)
	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	resolved, err := fx.service.Resolve(context.Background(), "token")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
}

func TestAuthService_Resolve_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find user by email")

	fx.tokens.EXPECT().Decode("token").Return(map[string]any{"sub": "alice@example.com"}, nil)
	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, dbErr)

	_, err := fx.service.Resolve(context.Background(), "token")

	assert.False(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	user := testUser()

	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokens.EXPECT().Issue(map[string]any{"sub": user.Email}).Return("signed", nil)

	token, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed", token.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, token.TokenType)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	token, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	user := testUser()

	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	token, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectCredentials))
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	user := testUser()

	fx.expectTx()
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokens.EXPECT().Issue(mock.Anything).Return("", errors.New("signing failed"))

	token, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "secret"})

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestAuthService_Refresh(t *testing.T) {
	fx := createTestAuthService(t)
	user := testUser()

	fx.tokens.EXPECT().Issue(map[string]any{"sub": user.Email}).Return("fresh", nil)

	token, err := fx.service.Refresh(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "fresh", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)

	_, err = fx.service.Refresh(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsInvalid))
}
