package user

import (
	"context"

	"redress/internal/shared/authorization"
)

// Repository persists users. Lookup methods return (nil, nil) when no row
// matches; callers decide whether absence is an error.
type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUUID(ctx context.Context, userUUID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role authorization.UserRole, page, pageSize int) ([]*User, int64, error)
}
