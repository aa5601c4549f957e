package usecases

import (
	"context"
	"time"

	"redress/internal/domain/complaint"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
	ActorID     uint
	ActorRole   authorization.UserRole
}

// ComplaintResult is the client-facing projection of a complaint.
type ComplaintResult struct {
	ComplaintID uint
	UserID      uint
	Category    string
	Description string
	Status      string
	AssignedTo  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newComplaintResult(c *complaint.Complaint) *ComplaintResult {
	return &ComplaintResult{
		ComplaintID: c.ID(),
		UserID:      c.UserID(),
		Category:    c.Category(),
		Description: c.Description(),
		Status:      c.Status().String(),
		AssignedTo:  c.AssignedTo(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// GetComplaintUseCase loads one complaint, hiding rows the actor may not
// see behind the same not-found error a missing row produces.
type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(complaintRepo complaint.Repository, logger logger.Interface) *GetComplaintUseCase {
	return &GetComplaintUseCase{complaintRepo: complaintRepo, logger: logger}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*ComplaintResult, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to load complaint")
	}
	if c == nil || !c.CanBeViewedBy(query.ActorID, query.ActorRole) {
		return nil, errors.NewNotFoundError("complaint not found")
	}

	return newComplaintResult(c), nil
}
