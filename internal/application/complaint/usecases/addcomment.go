package usecases

import (
	"context"
	"time"

	"redress/internal/domain/complaint"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

type AddCommentCommand struct {
	ComplaintID uint
	StaffID     uint
	Content     string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

// AddCommentUseCase records a staff note. The assignment check and the
// insert run inside one transaction so the comment cannot land after a
// concurrent reassignment has moved the complaint elsewhere.
type AddCommentUseCase struct {
	complaintRepo complaint.Repository
	commentRepo   complaint.CommentRepository
	txMgr         TransactionManager
	logger        logger.Interface
}

func NewAddCommentUseCase(
	complaintRepo complaint.Repository,
	commentRepo complaint.CommentRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"complaint_id", cmd.ComplaintID, "staff_id", cmd.StaffID)

	content := utils.SanitizeText(cmd.Content)
	comment, err := complaint.NewComment(cmd.ComplaintID, cmd.StaffID, content)
	if err != nil {
		uc.logger.Errorw("invalid add comment command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.complaintRepo.GetByID(txCtx, cmd.ComplaintID)
		if err != nil {
			uc.logger.Errorw("failed to load complaint", "complaint_id", cmd.ComplaintID, "error", err)
			return errors.NewInternalError("failed to add comment")
		}
		// A missing complaint and one assigned to someone else are
		// indistinguishable to the caller.
		if c == nil || !c.IsAssignedTo(cmd.StaffID) {
			return errors.NewNotFoundError("complaint not found")
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return errors.NewInternalError("failed to add comment")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "complaint_id", cmd.ComplaintID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
