package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	"todolist/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a window of users in id order.
func (srv *userService) List(ctx context.Context, page entity.Page) ([]*entity.User, error) {
	if err := page.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().List(ctx, page)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, err
	}

	return users, nil
}

// GetByID returns one user.
func (srv *userService) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Register creates an account after checking that neither the username nor the email is taken.
// The unique constraints in storage remain the final authority on concurrent registrations.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username), slog.String("email", input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Reject taken usernames and emails in one lookup
		_, err := userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserConflict, "username or email taken")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		// 2. Hash the password
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		// 3. Persist
		user = &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("User registration rejected", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Uint64("user_id", uint64(user.ID)))

	return user, nil
}

// UpdateSelf overwrites the caller's own username, email and password.
func (srv *userService) UpdateSelf(ctx context.Context, caller *entity.User, targetID uint, input usecase.UpdateUserInput) (*entity.User, error) {
	if !caller.CanModify(targetID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "update of another account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished before update")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found.Username = input.Username
		found.Email = input.Email
		found.PasswordHash = hash
		if err := userRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished before update")
			}

			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("User update rejected", slog.Uint64("user_id", uint64(targetID)), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User updated", slog.Uint64("user_id", uint64(user.ID)))

	return user, nil
}

// DeleteSelf removes the caller's own account and, with it, all of their todos.
func (srv *userService) DeleteSelf(ctx context.Context, caller *entity.User, targetID uint) (*usecase.Message, error) {
	if !caller.CanModify(targetID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "deletion of another account")
	}

	var username string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished before delete")
			}

			return errors.Wrap(err, "failed to find user")
		}
		username = found.Username

		if err := userRepo.Delete(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user vanished before delete")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Uint64("user_id", uint64(targetID)), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User deleted", slog.Uint64("user_id", uint64(targetID)))

	return &usecase.Message{Message: fmt.Sprintf("User %s deleted successfully", username)}, nil
}
