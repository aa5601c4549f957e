package complaint

import (
	"context"

	vo "redress/internal/domain/complaint/valueobjects"
)

// Repository persists complaints. GetByID returns (nil, nil) when no row
// matches. The conditional Update/Delete variants bake the authorization
// predicate into the SQL statement and report how many rows matched, so a
// zero result stays ambiguous between "missing" and "not yours".
type Repository interface {
	Save(ctx context.Context, complaint *Complaint) error
	GetByID(ctx context.Context, complaintID uint) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
	UpdateStatus(ctx context.Context, complaintID uint, status vo.Status) (int64, error)
	UpdateStatusByAssignee(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error)
	Assign(ctx context.Context, complaintID uint, staffID uint) (int64, error)
	Delete(ctx context.Context, complaintID uint) (int64, error)
	DeleteByOwner(ctx context.Context, complaintID uint, userID uint) (int64, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
}

// Filter narrows List results. A PageSize of zero disables pagination,
// which the CSV export relies on.
type Filter struct {
	Status     *vo.Status
	Category   *string
	UserID     *uint
	AssignedTo *uint
	Page       int
	PageSize   int
}

// Statistics is the aggregate complaint breakdown, computed with GROUP BY
// in the database rather than by loading rows.
type Statistics struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory map[string]int64 `json:"by_category"`
}

// CommentRepository persists staff comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByComplaint(ctx context.Context, complaintID uint) ([]*Comment, error)
	ListByAuthor(ctx context.Context, staffID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) (int64, error)
}
