package usecases

import (
	"context"
	"time"

	"redress/internal/domain/complaint"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type ListCommentsQuery struct {
	ComplaintID uint
	ActorID     uint
	ActorRole   authorization.UserRole
}

type ListAuthorCommentsQuery struct {
	StaffID uint
}

type CommentResult struct {
	CommentID   uint
	ComplaintID uint
	StaffID     uint
	Content     string
	CreatedAt   time.Time
}

func newCommentResult(c *complaint.Comment) *CommentResult {
	return &CommentResult{
		CommentID:   c.ID(),
		ComplaintID: c.ComplaintID(),
		StaffID:     c.StaffID(),
		Content:     c.Content(),
		CreatedAt:   c.CreatedAt(),
	}
}

// ListCommentsUseCase returns a complaint's comments oldest first. It
// follows the complaint's visibility rule: whoever may view the complaint
// may read its discussion.
type ListCommentsUseCase struct {
	complaintRepo complaint.Repository
	commentRepo   complaint.CommentRepository
	logger        logger.Interface
}

func NewListCommentsUseCase(
	complaintRepo complaint.Repository,
	commentRepo complaint.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*CommentResult, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}
	if c == nil || !c.CanBeViewedBy(query.ActorID, query.ActorRole) {
		return nil, errors.NewNotFoundError("complaint not found")
	}

	comments, err := uc.commentRepo.ListByComplaint(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	results := make([]*CommentResult, len(comments))
	for i, comment := range comments {
		results[i] = newCommentResult(comment)
	}
	return results, nil
}

// ListAuthorCommentsUseCase returns a staff member's own comment history,
// newest first.
type ListAuthorCommentsUseCase struct {
	commentRepo complaint.CommentRepository
	logger      logger.Interface
}

func NewListAuthorCommentsUseCase(commentRepo complaint.CommentRepository, logger logger.Interface) *ListAuthorCommentsUseCase {
	return &ListAuthorCommentsUseCase{commentRepo: commentRepo, logger: logger}
}

func (uc *ListAuthorCommentsUseCase) Execute(ctx context.Context, query ListAuthorCommentsQuery) ([]*CommentResult, error) {
	if query.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	comments, err := uc.commentRepo.ListByAuthor(ctx, query.StaffID)
	if err != nil {
		uc.logger.Errorw("failed to list comments by author", "staff_id", query.StaffID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	results := make([]*CommentResult, len(comments))
	for i, comment := range comments {
		results[i] = newCommentResult(comment)
	}
	return results, nil
}
