package complaint

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"redress/internal/application/complaint/usecases"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

type ComplaintHandler struct {
	createUC       usecases.CreateComplaintExecutor
	getUC          usecases.GetComplaintExecutor
	listUC         usecases.ListComplaintsExecutor
	updateStatusUC usecases.UpdateStatusExecutor
	assignUC       usecases.AssignComplaintExecutor
	deleteUC       usecases.DeleteComplaintExecutor
	statsUC        usecases.GetStatisticsExecutor
	exportUC       usecases.ExportComplaintsExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	myCommentsUC   usecases.ListAuthorCommentsExecutor
	delCommentUC   usecases.DeleteCommentExecutor
	logger         logger.Interface
}

func NewComplaintHandler(
	createUC usecases.CreateComplaintExecutor,
	getUC usecases.GetComplaintExecutor,
	listUC usecases.ListComplaintsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	assignUC usecases.AssignComplaintExecutor,
	deleteUC usecases.DeleteComplaintExecutor,
	statsUC usecases.GetStatisticsExecutor,
	exportUC usecases.ExportComplaintsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	myCommentsUC usecases.ListAuthorCommentsExecutor,
	delCommentUC usecases.DeleteCommentExecutor,
) *ComplaintHandler {
	return &ComplaintHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		assignUC:       assignUC,
		deleteUC:       deleteUC,
		statsUC:        statsUC,
		exportUC:       exportUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		myCommentsUC:   myCommentsUC,
		delCommentUC:   delCommentUC,
		logger:         logger.NewLogger(),
	}
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(c.GetUint("user_id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.ComplaintID,
		"status":     result.Status,
		"created_at": result.CreatedAt.Format(time.RFC3339),
	}, "Complaint created successfully")
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		ComplaintID: complaintID,
		ActorID:     actorID,
		ActorRole:   actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newComplaintResponse(result))
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	actorID, actorRole := actorFromContext(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListComplaintsQuery{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		ActorID:   actorID,
		ActorRole: actorRole,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	complaints := make([]ComplaintResponse, len(result.Complaints))
	for i, r := range result.Complaints {
		complaints[i] = newComplaintResponse(r)
	}
	utils.ListSuccessResponse(c, complaints, result.Total, result.Page, result.PageSize)
}

// UpdateStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actorID, actorRole := actorFromContext(c)
	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		ComplaintID: complaintID,
		Status:      req.Status,
		ActorID:     actorID,
		ActorRole:   actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// AssignComplaint handles POST /complaints/:id/assign (admin only)
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignComplaintCommand{
		ComplaintID: complaintID,
		StaffEmail:  req.StaffEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned successfully", result)
}

// DeleteComplaint handles DELETE /complaints/:id
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)
	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteComplaintCommand{
		ComplaintID: complaintID,
		ActorID:     actorID,
		ActorRole:   actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetStatistics handles GET /complaints/stats (admin only)
func (h *ComplaintHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// ExportComplaints handles GET /complaints/export
func (h *ComplaintHandler) ExportComplaints(c *gin.Context) {
	actorID, actorRole := actorFromContext(c)

	filename := fmt.Sprintf("complaints-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	err := h.exportUC.Execute(c.Request.Context(), usecases.ExportComplaintsCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		Writer:    c.Writer,
	})
	if err != nil {
		// Headers may already be out; log instead of rewriting the response.
		h.logger.Errorw("failed to stream complaint export", "error", err)
		c.Abort()
	}
}

// AddComment handles POST /complaints/:id/comments (staff only)
func (h *ComplaintHandler) AddComment(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		ComplaintID: complaintID,
		StaffID:     c.GetUint("user_id"),
		Content:     req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.CommentID,
		"created_at": result.CreatedAt.Format(time.RFC3339),
	}, "Comment added successfully")
}

// ListComments handles GET /complaints/:id/comments
func (h *ComplaintHandler) ListComments(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)
	results, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		ComplaintID: complaintID,
		ActorID:     actorID,
		ActorRole:   actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]CommentResponse, len(results))
	for i, r := range results {
		comments[i] = newCommentResponse(r)
	}
	utils.SuccessResponse(c, http.StatusOK, "", comments)
}

// MyComments handles GET /comments/mine (staff only)
func (h *ComplaintHandler) MyComments(c *gin.Context) {
	results, err := h.myCommentsUC.Execute(c.Request.Context(), usecases.ListAuthorCommentsQuery{
		StaffID: c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]CommentResponse, len(results))
	for i, r := range results {
		comments[i] = newCommentResponse(r)
	}
	utils.SuccessResponse(c, http.StatusOK, "", comments)
}

// DeleteComment handles DELETE /comments/:comment_id (admin only)
func (h *ComplaintHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.delCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
