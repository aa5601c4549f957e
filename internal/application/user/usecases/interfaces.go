package usecases

import (
	"context"

	"redress/internal/shared/authorization"
)

// TokenPair is the issued credential set returned to clients.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and rotates token pairs.
type JWTService interface {
	Generate(userUUID string, role authorization.UserRole) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*UserResult, error)
}

type GetUserByUUIDExecutor interface {
	Execute(ctx context.Context, query GetUserByUUIDQuery) (*UserResult, error)
}

type ListUsersByRoleExecutor interface {
	Execute(ctx context.Context, query ListUsersByRoleQuery) (*ListUsersResult, error)
}
