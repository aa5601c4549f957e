package usecases

import (
	"context"

	"redress/internal/domain/user"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type ListUsersByRoleQuery struct {
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*UserResult
	Total    int64
	Page     int
	PageSize int
}

// ListUsersByRoleUseCase backs the admin account directory. The staff
// listing used by the assignment UI is this with role=staff.
type ListUsersByRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersByRoleUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersByRoleUseCase {
	return &ListUsersByRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersByRoleUseCase) Execute(ctx context.Context, query ListUsersByRoleQuery) (*ListUsersResult, error) {
	role := authorization.UserRole(query.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: must be user, staff or admin")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := uc.userRepo.ListByRole(ctx, role, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "role", query.Role, "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	results := make([]*UserResult, len(users))
	for i, u := range users {
		results[i] = newUserResult(u)
	}

	return &ListUsersResult{
		Users:    results,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
