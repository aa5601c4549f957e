package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	apperrors "redress/internal/shared/errors"
)

func TestCreateComplaintUseCase_Execute_Success(t *testing.T) {
	var saved *complaint.Complaint
	invalidated := false

	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			require.NoError(t, c.SetID(42))
			saved = c
			return nil
		},
	}
	mockCache := &mockStatsCache{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated = true
			return nil
		},
	}

	useCase := NewCreateComplaintUseCase(mockRepo, mockCache, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		UserID:      7,
		Category:    "billing",
		Description: "charged twice for the same order",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ComplaintID)
	assert.Equal(t, vo.StatusPending.String(), result.Status)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, saved)
	assert.Equal(t, uint(7), saved.UserID())
	assert.Equal(t, "billing", saved.Category())
	assert.Nil(t, saved.AssignedTo())
	assert.True(t, invalidated)
}

func TestCreateComplaintUseCase_Execute_SanitizesInput(t *testing.T) {
	var saved *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			require.NoError(t, c.SetID(1))
			saved = c
			return nil
		},
	}

	useCase := NewCreateComplaintUseCase(mockRepo, &mockStatsCache{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		UserID:      1,
		Category:    "  billing  ",
		Description: "<script>alert(1)</script>double charge",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "billing", saved.Category())
	assert.NotContains(t, saved.Description(), "<script>")
}

func TestCreateComplaintUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateComplaintCommand
	}{
		{
			name:    "missing user",
			command: CreateComplaintCommand{Category: "billing", Description: "text"},
		},
		{
			name:    "empty category",
			command: CreateComplaintCommand{UserID: 1, Description: "text"},
		},
		{
			name:    "empty description",
			command: CreateComplaintCommand{UserID: 1, Category: "billing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateComplaintUseCase(&mockComplaintRepository{}, &mockStatsCache{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreateComplaintUseCase_Execute_SaveError(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			return errors.New("connection refused")
		},
	}

	useCase := NewCreateComplaintUseCase(mockRepo, &mockStatsCache{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		UserID:      1,
		Category:    "billing",
		Description: "double charge",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
