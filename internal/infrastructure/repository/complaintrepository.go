package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/infrastructure/persistence/mappers"
	"redress/internal/infrastructure/persistence/models"
	db "redress/internal/shared/db"
)

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *ComplaintRepository) GetByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, complaintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category LIKE ?", "%"+*filter.Category+"%")
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		complaints[i] = c
	}
	return complaints, total, nil
}

// UpdateStatus updates unconditionally (admin path) and reports how many
// rows matched.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, complaintID uint, status vo.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", complaintID).
		Update("status", status.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update complaint status: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateStatusByAssignee carries the authorization predicate in the WHERE
// clause, so a staff member can only touch rows assigned to them and the
// check-and-write is a single atomic statement.
func (r *ComplaintRepository) UpdateStatusByAssignee(ctx context.Context, complaintID uint, status vo.Status, staffID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ? AND assigned_to = ?", complaintID, staffID).
		Update("status", status.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update complaint status: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ComplaintRepository) Assign(ctx context.Context, complaintID uint, staffID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", complaintID).
		Update("assigned_to", staffID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to assign complaint: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, complaintID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ComplaintModel{}, complaintID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByOwner deletes only when the row belongs to userID. Comments go
// with it via the foreign key cascade.
func (r *ComplaintRepository) DeleteByOwner(ctx context.Context, complaintID uint, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("id = ? AND user_id = ?", complaintID, userID).
		Delete(&models.ComplaintModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type statusCount struct {
	Status string
	Count  int64
}

type categoryCount struct {
	Category string
	Count    int64
}

// GetStatistics aggregates in the database with GROUP BY instead of
// loading rows. Statuses with no rows still appear with a zero count.
func (r *ComplaintRepository) GetStatistics(ctx context.Context) (*complaint.Statistics, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var statusCounts []statusCount
	if err := tx.
		Model(&models.ComplaintModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate complaint statuses: %w", err)
	}

	var categoryCounts []categoryCount
	if err := tx.
		Model(&models.ComplaintModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&categoryCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate complaint categories: %w", err)
	}

	stats := &complaint.Statistics{
		ByStatus:   make(map[string]int64, len(vo.AllStatuses())),
		ByCategory: make(map[string]int64, len(categoryCounts)),
	}
	for _, s := range vo.AllStatuses() {
		stats.ByStatus[s.String()] = 0
	}
	for _, sc := range statusCounts {
		stats.ByStatus[sc.Status] = sc.Count
		stats.Total += sc.Count
	}
	for _, cc := range categoryCounts {
		stats.ByCategory[cc.Category] = cc.Count
	}
	return stats, nil
}
