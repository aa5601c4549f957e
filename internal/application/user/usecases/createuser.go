package usecases

import (
	"context"
	"time"

	"redress/internal/domain/user"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type CreateUserResult struct {
	UserID    uint
	UUID      string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// CreateUserUseCase is the admin path for provisioning accounts with any
// role, typically staff. The route guard restricts it to admins.
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "role", cmd.Role)

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: must be user, staff or admin")
	}

	newUser, err := buildUser(cmd.Name, cmd.Email, cmd.Password, role, uc.hasher)
	if err != nil {
		uc.logger.Errorw("invalid create user command", "error", err)
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate email on user creation", "email", newUser.Email().String())
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "role", newUser.Role().String())

	return &CreateUserResult{
		UserID:    newUser.ID(),
		UUID:      newUser.UUID(),
		Name:      newUser.Name(),
		Email:     newUser.Email().String(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
