package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "redress/internal/domain/user/valueobjects"
	"redress/internal/shared/authorization"
)

// User is an account in the system. The role is fixed at creation; there is
// no role-change operation.
type User struct {
	id           uint
	uuid         string
	name         string
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser builds a fresh account. passwordHash must already be a bcrypt
// hash; plaintext never reaches the entity.
func NewUser(name string, email *vo.Email, passwordHash string, role authorization.UserRole) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		uuid:         uuid.NewString(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	userUUID string,
	name string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		uuid:         userUUID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) UUID() string {
	return u.uuid
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangePasswordHash replaces the stored hash. Old-password verification
// happens in the application layer before this is called.
func (u *User) ChangePasswordHash(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}
