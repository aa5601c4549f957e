package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"redress/internal/domain/complaint"
	"redress/internal/infrastructure/persistence/mappers"
	"redress/internal/infrastructure/persistence/models"
	db "redress/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *complaint.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*complaint.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.Comment, error) {
	return r.list(ctx, "complaint_id = ?", complaintID, "created_at ASC")
}

func (r *CommentRepository) ListByAuthor(ctx context.Context, staffID uint) ([]*complaint.Comment, error) {
	return r.list(ctx, "staff_id = ?", staffID, "created_at DESC")
}

func (r *CommentRepository) list(ctx context.Context, query string, arg interface{}, order string) ([]*complaint.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(query, arg).
		Order(order).
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*complaint.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	return result.RowsAffected, nil
}
