package usecases

import (
	"context"

	"redress/internal/domain/user"
	vo "redress/internal/domain/user/valueobjects"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// ChangePasswordUseCase lets an authenticated user rotate their own
// password after proving they know the current one.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to change password")
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.hasher.Verify(cmd.OldPassword, u.PasswordHash()); err != nil {
		uc.logger.Warnw("old password verification failed", "user_id", cmd.UserID)
		return errors.NewUnauthorizedError("invalid old password")
	}

	newHash, err := uc.hasher.Hash(newPassword.String())
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return errors.NewInternalError("failed to change password")
	}

	if err := u.ChangePasswordHash(newHash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist new password", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
