package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
}

// DeleteCommentUseCase removes a comment. The route guard restricts this
// to admins; moderation is the only reason comments ever disappear alone.
type DeleteCommentUseCase struct {
	commentRepo complaint.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo complaint.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo, logger: logger}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID)

	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	affected, err := uc.commentRepo.Delete(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return errors.NewInternalError("failed to delete comment")
	}
	if affected == 0 {
		return errors.NewNotFoundError("comment not found")
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)
	return nil
}
