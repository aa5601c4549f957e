package complaint

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"redress/internal/application/complaint/usecases"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
)

type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *CreateComplaintRequest) ToCommand(userID uint) usecases.CreateComplaintCommand {
	return usecases.CreateComplaintCommand{
		UserID:      userID,
		Category:    r.Category,
		Description: r.Description,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,complaintstatus"`
}

type AssignComplaintRequest struct {
	StaffEmail string `json:"staff_email" binding:"required,email"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=5000"`
}

type ComplaintResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  *uint  `json:"assigned_to"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newComplaintResponse(r *usecases.ComplaintResult) ComplaintResponse {
	return ComplaintResponse{
		ID:          r.ComplaintID,
		UserID:      r.UserID,
		Category:    r.Category,
		Description: r.Description,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

type CommentResponse struct {
	ID          uint   `json:"id"`
	ComplaintID uint   `json:"complaint_id"`
	StaffID     uint   `json:"staff_id"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"created_at"`
}

func newCommentResponse(r *usecases.CommentResult) CommentResponse {
	return CommentResponse{
		ID:          r.CommentID,
		ComplaintID: r.ComplaintID,
		StaffID:     r.StaffID,
		Comment:     r.Content,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func parseComplaintID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(id), nil
}

func parseCommentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid comment ID")
	}
	return uint(id), nil
}

func actorFromContext(c *gin.Context) (uint, authorization.UserRole) {
	return c.GetUint("user_id"), authorization.ParseUserRole(c.GetString("user_role"))
}
