package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/shared/authorization"
	apperrors "redress/internal/shared/errors"
)

func TestListComplaintsUseCase_Execute_RoleScoping(t *testing.T) {
	tests := []struct {
		name           string
		actorRole      authorization.UserRole
		wantUserID     bool
		wantAssignedTo bool
	}{
		{name: "admin is unscoped", actorRole: authorization.RoleAdmin},
		{name: "staff scoped to assignments", actorRole: authorization.RoleStaff, wantAssignedTo: true},
		{name: "user scoped to own rows", actorRole: authorization.RoleUser, wantUserID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter complaint.Filter
			mockRepo := &mockComplaintRepository{
				ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
					gotFilter = filter
					return []*complaint.Complaint{reconstructComplaint(1, 7, vo.StatusPending, nil)}, 1, nil
				},
			}

			useCase := NewListComplaintsUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), ListComplaintsQuery{
				ActorID:   7,
				ActorRole: tt.actorRole,
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Len(t, result.Complaints, 1)
			assert.Equal(t, int64(1), result.Total)

			if tt.wantUserID {
				require.NotNil(t, gotFilter.UserID)
				assert.Equal(t, uint(7), *gotFilter.UserID)
			} else {
				assert.Nil(t, gotFilter.UserID)
			}
			if tt.wantAssignedTo {
				require.NotNil(t, gotFilter.AssignedTo)
				assert.Equal(t, uint(7), *gotFilter.AssignedTo)
			} else {
				assert.Nil(t, gotFilter.AssignedTo)
			}
		})
	}
}

func TestListComplaintsUseCase_Execute_StatusFilter(t *testing.T) {
	var gotFilter complaint.Filter
	mockRepo := &mockComplaintRepository{
		ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListComplaintsUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListComplaintsQuery{
		Status:    "In Progress",
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusInProgress, *gotFilter.Status)
}

func TestListComplaintsUseCase_Execute_InvalidStatus(t *testing.T) {
	useCase := NewListComplaintsUseCase(&mockComplaintRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListComplaintsQuery{
		Status:    "Closed",
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListComplaintsUseCase_Execute_PaginationClamping(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values get defaults", page: 0, pageSize: 0, wantPage: 1, wantPageSize: 20},
		{name: "negative page clamped", page: -3, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "oversized page size clamped", page: 2, pageSize: 500, wantPage: 2, wantPageSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter complaint.Filter
			mockRepo := &mockComplaintRepository{
				ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
					gotFilter = filter
					return nil, 0, nil
				},
			}

			useCase := NewListComplaintsUseCase(mockRepo, &mockLogger{})
			_, err := useCase.Execute(context.Background(), ListComplaintsQuery{
				ActorID:   1,
				ActorRole: authorization.RoleAdmin,
				Page:      tt.page,
				PageSize:  tt.pageSize,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, gotFilter.Page)
			assert.Equal(t, tt.wantPageSize, gotFilter.PageSize)
		})
	}
}
