// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	"todolist/internal/usecase"
)

const claimSubject = "sub"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve decodes the token and loads the user named by its subject.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrCredentialsInvalid, "missing bearer token")
	}

	claims, err := srv.tokens.Decode(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected bearer token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialsInvalid, err.Error())
	}

	subject, ok := claims[claimSubject].(string)
	if !ok || subject == "" {
		return nil, errors.Wrap(domainerrors.ErrCredentialsInvalid, "token has no subject")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrCredentialsInvalid, "token subject no longer exists")
			}

			return errors.Wrap(err, "failed to find token subject")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the email/password pair and issues an access token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.Token, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrIncorrectCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Uint64("user_id", uint64(user.ID)))

		return nil, errors.Wrap(domainerrors.ErrIncorrectCredentials, "password mismatch")
	}

	token, err := srv.issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Uint64("user_id", uint64(user.ID)))

	return token, nil
}

// Refresh issues a new token for a user who already holds a valid one.
func (srv *authService) Refresh(ctx context.Context, user *entity.User) (*usecase.Token, error) {
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrCredentialsInvalid, "no authenticated user")
	}

	token, err := srv.issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to refresh access token", slog.Any("error", err))

		return nil, err
	}

	return token, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.Token, error) {
	accessToken, err := srv.tokens.Issue(map[string]any{claimSubject: user.Email})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.Token{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
	}, nil
}
