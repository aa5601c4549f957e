package usecases

import (
	"context"

	"redress/internal/domain/complaint"
)

// TransactionManager runs a function inside a database transaction.
// Satisfied by shared/db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsCache is the Redis-backed statistics snapshot. Implementations must
// make Get return a distinguishable miss so the use case can fall back to
// the database.
type StatsCache interface {
	Get(ctx context.Context) (*complaint.Statistics, error)
	Set(ctx context.Context, stats *complaint.Statistics) error
	Invalidate(ctx context.Context) error
}

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*ComplaintResult, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error)
}

type DeleteComplaintExecutor interface {
	Execute(ctx context.Context, cmd DeleteComplaintCommand) error
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context) (*complaint.Statistics, error)
}

type ExportComplaintsExecutor interface {
	Execute(ctx context.Context, cmd ExportComplaintsCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*CommentResult, error)
}

type ListAuthorCommentsExecutor interface {
	Execute(ctx context.Context, query ListAuthorCommentsQuery) ([]*CommentResult, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}
