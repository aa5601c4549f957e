package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type DeleteComplaintCommand struct {
	ComplaintID uint
	ActorID     uint
	ActorRole   authorization.UserRole
}

// DeleteComplaintUseCase removes a complaint. Admins delete any row;
// everyone else goes through a conditional delete that only matches their
// own rows. Comments disappear with the row via the foreign key cascade.
type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	statsCache    StatsCache
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.Repository,
	statsCache StatsCache,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) error {
	uc.logger.Infow("executing delete complaint use case",
		"complaint_id", cmd.ComplaintID, "actor_id", cmd.ActorID)

	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}

	var (
		affected int64
		err      error
	)
	if cmd.ActorRole.IsAdmin() {
		affected, err = uc.complaintRepo.Delete(ctx, cmd.ComplaintID)
	} else {
		affected, err = uc.complaintRepo.DeleteByOwner(ctx, cmd.ComplaintID, cmd.ActorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to delete complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return errors.NewInternalError("failed to delete complaint")
	}
	if affected == 0 {
		return errors.NewNotFoundError("complaint not found")
	}

	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
	}
	uc.logger.Infow("complaint deleted", "complaint_id", cmd.ComplaintID)
	return nil
}
