package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redress/internal/shared/authorization"
	apperrors "redress/internal/shared/errors"
)

func TestDeleteComplaintUseCase_Execute_AdminDeletesAnyRow(t *testing.T) {
	invalidated := false
	mockRepo := &mockComplaintRepository{
		DeleteFunc: func(ctx context.Context, complaintID uint) (int64, error) {
			assert.Equal(t, uint(5), complaintID)
			return 1, nil
		},
		DeleteByOwnerFunc: func(ctx context.Context, complaintID uint, userID uint) (int64, error) {
			t.Fatal("admin must not go through the owner-scoped delete")
			return 0, nil
		},
	}
	mockCache := &mockStatsCache{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated = true
			return nil
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, mockCache, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 5,
		ActorID:     1,
		ActorRole:   authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.True(t, invalidated)
}

func TestDeleteComplaintUseCase_Execute_OwnerScopedDelete(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		DeleteByOwnerFunc: func(ctx context.Context, complaintID uint, userID uint) (int64, error) {
			assert.Equal(t, uint(5), complaintID)
			assert.Equal(t, uint(7), userID)
			return 1, nil
		},
		DeleteFunc: func(ctx context.Context, complaintID uint) (int64, error) {
			t.Fatal("non-admin must not use the unscoped delete")
			return 0, nil
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, &mockStatsCache{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 5,
		ActorID:     7,
		ActorRole:   authorization.RoleUser,
	})

	require.NoError(t, err)
}

func TestDeleteComplaintUseCase_Execute_ZeroRowsIsNotFound(t *testing.T) {
	// Deleting someone else's complaint matches zero rows; the caller sees
	// the same not-found error a missing row produces.
	mockRepo := &mockComplaintRepository{
		DeleteByOwnerFunc: func(ctx context.Context, complaintID uint, userID uint) (int64, error) {
			return 0, nil
		},
	}
	mockCache := &mockStatsCache{
		InvalidateFunc: func(ctx context.Context) error {
			t.Fatal("stats must not be invalidated when nothing was deleted")
			return nil
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, mockCache, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 5,
		ActorID:     8,
		ActorRole:   authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
