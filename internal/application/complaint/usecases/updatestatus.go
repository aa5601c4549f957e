package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type UpdateStatusCommand struct {
	ComplaintID uint
	Status      string
	ActorID     uint
	ActorRole   authorization.UserRole
}

type UpdateStatusResult struct {
	ComplaintID uint
	Status      string
}

// UpdateStatusUseCase changes a complaint's status. Admins update any row;
// staff update through a conditional statement whose WHERE clause carries
// the assignment check, so authorization and the write are one atomic
// operation. A zero row count maps to the merged not-found outcome.
type UpdateStatusUseCase struct {
	complaintRepo complaint.Repository
	statsCache    StatsCache
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	complaintRepo complaint.Repository,
	statsCache StatsCache,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		complaintRepo: complaintRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case",
		"complaint_id", cmd.ComplaintID, "status", cmd.Status, "actor_id", cmd.ActorID)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	status, err := vo.ParseStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var affected int64
	switch cmd.ActorRole {
	case authorization.RoleAdmin:
		affected, err = uc.complaintRepo.UpdateStatus(ctx, cmd.ComplaintID, status)
	case authorization.RoleStaff:
		affected, err = uc.complaintRepo.UpdateStatusByAssignee(ctx, cmd.ComplaintID, status, cmd.ActorID)
	default:
		return nil, errors.NewForbiddenError("insufficient role")
	}
	if err != nil {
		uc.logger.Errorw("failed to update complaint status", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to update complaint status")
	}
	if affected == 0 {
		return nil, errors.NewNotFoundError("complaint not found")
	}

	uc.invalidateStats(ctx)
	uc.logger.Infow("complaint status updated", "complaint_id", cmd.ComplaintID, "status", status.String())

	return &UpdateStatusResult{
		ComplaintID: cmd.ComplaintID,
		Status:      status.String(),
	}, nil
}

func (uc *UpdateStatusUseCase) invalidateStats(ctx context.Context) {
	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
	}
}
