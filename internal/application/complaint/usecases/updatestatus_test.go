package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/shared/authorization"
	apperrors "redress/internal/shared/errors"
)

func TestUpdateStatusUseCase_Execute_AdminUpdatesAnyRow(t *testing.T) {
	updated := false
	invalidated := false
	mockRepo := &mockComplaintRepository{
		UpdateStatusFunc: func(ctx context.Context, complaintID uint, status vo.Status) (int64, error) {
			updated = true
			assert.Equal(t, uint(5), complaintID)
			assert.Equal(t, vo.StatusResolved, status)
			return 1, nil
		},
		UpdateStatusByAssigneeFunc: func(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error) {
			t.Fatal("admin must not go through the assignee-scoped update")
			return 0, nil
		},
	}
	mockCache := &mockStatsCache{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated = true
			return nil
		},
	}

	useCase := NewUpdateStatusUseCase(mockRepo, mockCache, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 5,
		Status:      "Resolved",
		ActorID:     1,
		ActorRole:   authorization.RoleAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Resolved", result.Status)
	assert.True(t, updated)
	assert.True(t, invalidated)
}

func TestUpdateStatusUseCase_Execute_StaffScopedToAssignment(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		UpdateStatusByAssigneeFunc: func(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error) {
			assert.Equal(t, uint(5), complaintID)
			assert.Equal(t, uint(9), staffID)
			return 1, nil
		},
		UpdateStatusFunc: func(ctx context.Context, complaintID uint, status vo.Status) (int64, error) {
			t.Fatal("staff must not use the unscoped update")
			return 0, nil
		},
	}

	useCase := NewUpdateStatusUseCase(mockRepo, &mockStatsCache{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 5,
		Status:      "In Progress",
		ActorID:     9,
		ActorRole:   authorization.RoleStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, "In Progress", result.Status)
}

func TestUpdateStatusUseCase_Execute_ZeroRowsIsNotFound(t *testing.T) {
	// Staff updating a complaint assigned to someone else matches zero rows,
	// which must read exactly like a missing complaint.
	mockRepo := &mockComplaintRepository{
		UpdateStatusByAssigneeFunc: func(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error) {
			return 0, nil
		},
	}

	useCase := NewUpdateStatusUseCase(mockRepo, &mockStatsCache{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 5,
		Status:      "Resolved",
		ActorID:     9,
		ActorRole:   authorization.RoleStaff,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateStatusUseCase_Execute_UserForbidden(t *testing.T) {
	useCase := NewUpdateStatusUseCase(&mockComplaintRepository{}, &mockStatsCache{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 5,
		Status:      "Resolved",
		ActorID:     7,
		ActorRole:   authorization.RoleUser,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUpdateStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	useCase := NewUpdateStatusUseCase(&mockComplaintRepository{}, &mockStatsCache{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateStatusCommand{
		ComplaintID: 5,
		Status:      "Done",
		ActorID:     1,
		ActorRole:   authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
