package usecases

import (
	"context"
	"time"

	"redress/internal/domain/complaint"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

type CreateComplaintCommand struct {
	UserID      uint
	Category    string
	Description string
}

type CreateComplaintResult struct {
	ComplaintID uint
	Status      string
	CreatedAt   time.Time
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	statsCache    StatsCache
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	statsCache StatsCache,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	uc.logger.Infow("executing create complaint use case", "user_id", cmd.UserID, "category", cmd.Category)

	category := utils.SanitizeText(cmd.Category)
	description := utils.SanitizeText(cmd.Description)

	newComplaint, err := complaint.NewComplaint(cmd.UserID, category, description)
	if err != nil {
		uc.logger.Errorw("invalid create complaint command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, errors.NewInternalError("failed to create complaint")
	}

	uc.invalidateStats(ctx)
	uc.logger.Infow("complaint created", "complaint_id", newComplaint.ID(), "user_id", cmd.UserID)

	return &CreateComplaintResult{
		ComplaintID: newComplaint.ID(),
		Status:      newComplaint.Status().String(),
		CreatedAt:   newComplaint.CreatedAt(),
	}, nil
}

func (uc *CreateComplaintUseCase) invalidateStats(ctx context.Context) {
	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
	}
}
