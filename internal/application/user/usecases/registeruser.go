package usecases

import (
	"context"
	"time"

	"redress/internal/domain/user"
	vo "redress/internal/domain/user/valueobjects"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID    uint
	UUID      string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// RegisterUserUseCase creates a submitter account through the public
// endpoint. The role is always "user"; staff and admin accounts only come
// from CreateUserUseCase.
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	newUser, err := buildUser(cmd.Name, cmd.Email, cmd.Password, authorization.RoleUser, uc.hasher)
	if err != nil {
		uc.logger.Errorw("invalid register user command", "error", err)
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate email on registration", "email", newUser.Email().String())
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterUserResult{
		UserID:    newUser.ID(),
		UUID:      newUser.UUID(),
		Name:      newUser.Name(),
		Email:     newUser.Email().String(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

// buildUser validates the raw fields through the value objects, hashes the
// password and assembles the entity. Shared by registration and admin
// account creation.
func buildUser(name, email, password string, role authorization.UserRole, hasher user.PasswordHasher) (*user.User, error) {
	emailVO, err := vo.NewEmail(email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	passwordVO, err := vo.NewPassword(password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := hasher.Hash(passwordVO.String())
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(name, emailVO, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return newUser, nil
}
