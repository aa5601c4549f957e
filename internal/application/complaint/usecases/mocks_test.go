package usecases

import (
	"context"
	"errors"
	"time"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/domain/user"
	"redress/internal/shared/authorization"
	"redress/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc                   func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFunc                func(ctx context.Context, complaintID uint) (*complaint.Complaint, error)
	ListFunc                   func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
	UpdateStatusFunc           func(ctx context.Context, complaintID uint, status vo.Status) (int64, error)
	UpdateStatusByAssigneeFunc func(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error)
	AssignFunc                 func(ctx context.Context, complaintID uint, staffID uint) (int64, error)
	DeleteFunc                 func(ctx context.Context, complaintID uint) (int64, error)
	DeleteByOwnerFunc          func(ctx context.Context, complaintID uint, userID uint) (int64, error)
	GetStatisticsFunc          func(ctx context.Context) (*complaint.Statistics, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) UpdateStatus(ctx context.Context, complaintID uint, status vo.Status) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, complaintID, status)
	}
	return 1, nil
}

func (m *mockComplaintRepository) UpdateStatusByAssignee(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error) {
	if m.UpdateStatusByAssigneeFunc != nil {
		return m.UpdateStatusByAssigneeFunc(ctx, complaintID, status, staffID)
	}
	return 1, nil
}

func (m *mockComplaintRepository) Assign(ctx context.Context, complaintID uint, staffID uint) (int64, error) {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, complaintID, staffID)
	}
	return 1, nil
}

func (m *mockComplaintRepository) Delete(ctx context.Context, complaintID uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, complaintID)
	}
	return 1, nil
}

func (m *mockComplaintRepository) DeleteByOwner(ctx context.Context, complaintID uint, userID uint) (int64, error) {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, complaintID, userID)
	}
	return 1, nil
}

func (m *mockComplaintRepository) GetStatistics(ctx context.Context) (*complaint.Statistics, error) {
	if m.GetStatisticsFunc != nil {
		return m.GetStatisticsFunc(ctx)
	}
	return &complaint.Statistics{}, nil
}

type mockCommentRepository struct {
	SaveFunc            func(ctx context.Context, c *complaint.Comment) error
	GetByIDFunc         func(ctx context.Context, commentID uint) (*complaint.Comment, error)
	ListByComplaintFunc func(ctx context.Context, complaintID uint) ([]*complaint.Comment, error)
	ListByAuthorFunc    func(ctx context.Context, staffID uint) ([]*complaint.Comment, error)
	DeleteFunc          func(ctx context.Context, commentID uint) (int64, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *complaint.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*complaint.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.Comment, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByAuthor(ctx context.Context, staffID uint) ([]*complaint.Comment, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(ctx, staffID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return 1, nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, userID uint) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByUUIDFunc  func(ctx context.Context, userUUID string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListByRoleFunc func(ctx context.Context, role authorization.UserRole, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, userUUID string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role, page, pageSize)
	}
	return nil, 0, nil
}

type mockStatsCache struct {
	GetFunc        func(ctx context.Context) (*complaint.Statistics, error)
	SetFunc        func(ctx context.Context, stats *complaint.Statistics) error
	InvalidateFunc func(ctx context.Context) error
}

var errTestCacheMiss = errors.New("cache miss")

func (m *mockStatsCache) Get(ctx context.Context) (*complaint.Statistics, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, errTestCacheMiss
}

func (m *mockStatsCache) Set(ctx context.Context, stats *complaint.Statistics) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, stats)
	}
	return nil
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

// mockTxManager runs the callback directly; tests that need transaction
// failures override RunFunc.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func reconstructComplaint(id, userID uint, status vo.Status, assignedTo *uint) *complaint.Complaint {
	c, err := complaint.ReconstructComplaint(
		id, userID, "billing", "charged twice for the same order",
		status, assignedTo, testTime(), testTime(),
	)
	if err != nil {
		panic(err)
	}
	return c
}
