package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type ListComplaintsQuery struct {
	Status    string
	Category  string
	ActorID   uint
	ActorRole authorization.UserRole
	Page      int
	PageSize  int
}

type ListComplaintsResult struct {
	Complaints []*ComplaintResult
	Total      int64
	Page       int
	PageSize   int
}

// ListComplaintsUseCase scopes the listing by role before any filter is
// applied: admins see every row, staff see their assignments, submitters
// see their own complaints.
type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(complaintRepo complaint.Repository, logger logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{complaintRepo: complaintRepo, logger: logger}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	results := make([]*ComplaintResult, len(complaints))
	for i, c := range complaints {
		results[i] = newComplaintResult(c)
	}

	return &ListComplaintsResult{
		Complaints: results,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (uc *ListComplaintsUseCase) buildFilter(query ListComplaintsQuery) (complaint.Filter, error) {
	filter := complaint.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if query.Status != "" {
		status, err := vo.ParseStatus(query.Status)
		if err != nil {
			return complaint.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Category != "" {
		category := query.Category
		filter.Category = &category
	}

	actorID := query.ActorID
	switch query.ActorRole {
	case authorization.RoleAdmin:
		// unscoped
	case authorization.RoleStaff:
		filter.AssignedTo = &actorID
	default:
		filter.UserID = &actorID
	}
	return filter, nil
}
