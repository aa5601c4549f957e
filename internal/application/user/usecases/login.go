package usecases

import (
	"context"

	"redress/internal/domain/user"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	UUID         string
	Name         string
	Email        string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// LoginUseCase authenticates by email and password. Every failure path
// returns the same unauthorized error so callers cannot probe which
// emails have accounts.
type LoginUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}
	if u == nil {
		uc.logger.Warnw("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(u.UUID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		UserID:       u.ID(),
		UUID:         u.UUID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		Role:         u.Role().String(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
