package usecases

import (
	"context"
	"time"

	"redress/internal/domain/user"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserByUUIDQuery struct {
	UUID string
}

// UserResult is the client-safe projection of a user; the password hash
// never leaves the use case layer.
type UserResult struct {
	UserID    uint
	UUID      string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

func newUserResult(u *user.User) *UserResult {
	return &UserResult{
		UserID:    u.ID(),
		UUID:      u.UUID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*UserResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return newUserResult(u), nil
}

// GetUserByUUIDUseCase resolves the public identifier carried in JWT claims
// back to the full account. The auth middleware depends on it.
type GetUserByUUIDUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserByUUIDUseCase(userRepo user.Repository, logger logger.Interface) *GetUserByUUIDUseCase {
	return &GetUserByUUIDUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserByUUIDUseCase) Execute(ctx context.Context, query GetUserByUUIDQuery) (*UserResult, error) {
	if len(query.UUID) == 0 {
		return nil, errors.NewValidationError("user UUID is required")
	}

	u, err := uc.userRepo.GetByUUID(ctx, query.UUID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "uuid", query.UUID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return newUserResult(u), nil
}
