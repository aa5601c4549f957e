package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	apperrors "redress/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	staffID := uint(9)
	var saved *complaint.Comment
	inTransaction := false

	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			assert.True(t, inTransaction, "assignment check must run inside the transaction")
			return reconstructComplaint(5, 7, vo.StatusInProgress, &staffID), nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Comment) error {
			assert.True(t, inTransaction, "insert must run inside the transaction")
			require.NoError(t, c.SetID(100))
			saved = c
			return nil
		},
	}
	txMgr := &mockTxManager{
		RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			inTransaction = true
			defer func() { inTransaction = false }()
			return fn(ctx)
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, mockComments, txMgr, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ComplaintID: 5,
		StaffID:     9,
		Content:     "called the customer, refund issued",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.CommentID)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, saved)
	assert.Equal(t, uint(5), saved.ComplaintID())
	assert.Equal(t, uint(9), saved.StaffID())
}

func TestAddCommentUseCase_Execute_NotAssignee(t *testing.T) {
	otherStaff := uint(11)

	tests := []struct {
		name      string
		complaint *complaint.Complaint
	}{
		{name: "complaint missing", complaint: nil},
		{name: "assigned to someone else", complaint: reconstructComplaint(5, 7, vo.StatusInProgress, &otherStaff)},
		{name: "unassigned", complaint: reconstructComplaint(5, 7, vo.StatusPending, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockComplaintRepository{
				GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
					return tt.complaint, nil
				},
			}
			mockComments := &mockCommentRepository{
				SaveFunc: func(ctx context.Context, c *complaint.Comment) error {
					t.Fatal("comment must not be saved when the actor is not the assignee")
					return nil
				},
			}

			useCase := NewAddCommentUseCase(mockRepo, mockComments, &mockTxManager{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), AddCommentCommand{
				ComplaintID: 5,
				StaffID:     9,
				Content:     "note",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsNotFoundError(err))
			assert.Equal(t, "not_found: complaint not found", err.Error())
		})
	}
}

func TestAddCommentUseCase_Execute_EmptyContent(t *testing.T) {
	txMgr := &mockTxManager{
		RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			t.Fatal("no transaction should start for an invalid comment")
			return nil
		},
	}

	useCase := NewAddCommentUseCase(&mockComplaintRepository{}, &mockCommentRepository{}, txMgr, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ComplaintID: 5,
		StaffID:     9,
		Content:     "   ",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
