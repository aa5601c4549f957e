package mappers

import (
	"fmt"

	"redress/internal/domain/complaint"
	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
	CommentToModel(c *complaint.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*complaint.Comment, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:          c.ID(),
		UserID:      c.UserID(),
		Category:    c.Category(),
		Description: c.Description(),
		Status:      c.Status().String(),
		AssignedTo:  c.AssignedTo(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	status, err := vo.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in complaint row (id=%d): %w", model.ID, err)
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.UserID,
		model.Category,
		model.Description,
		status,
		model.AssignedTo,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ComplaintMapperImpl) CommentToModel(c *complaint.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:          c.ID(),
		ComplaintID: c.ComplaintID(),
		StaffID:     c.StaffID(),
		Comment:     c.Content(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) CommentToDomain(model *models.CommentModel) (*complaint.Comment, error) {
	return complaint.ReconstructComment(
		model.ID,
		model.ComplaintID,
		model.StaffID,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}
