package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"redress/internal/application/user/usecases"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

type UserHandler struct {
	createUserUC     usecases.CreateUserExecutor
	getUserUC        usecases.GetUserExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	listByRoleUC     usecases.ListUsersByRoleExecutor
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	getUserUC usecases.GetUserExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	listByRoleUC usecases.ListUsersByRoleExecutor,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		getUserUC:        getUserUC,
		changePasswordUC: changePasswordUC,
		listByRoleUC:     listByRoleUC,
		logger:           logger.NewLogger(),
	}
}

// CreateUser handles POST /users (admin only)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, UserResponse{
		ID:        result.UserID,
		UUID:      result.UUID,
		Name:      result.Name,
		Email:     result.Email,
		Role:      result.Role,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
	}, "User created successfully")
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newUserResponse(result))
}

// ChangePassword handles PUT /users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      c.GetUint("user_id"),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// ListUsers handles GET /users?role=... (admin only)
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listByRoleUC.Execute(c.Request.Context(), usecases.ListUsersByRoleQuery{
		Role:     c.DefaultQuery("role", authorization.RoleUser.String()),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users := make([]UserResponse, len(result.Users))
	for i, u := range result.Users {
		users[i] = newUserResponse(u)
	}
	utils.ListSuccessResponse(c, users, result.Total, result.Page, result.PageSize)
}

// ListStaff handles GET /users/staff (admin only), the directory backing
// the assignment form.
func (h *UserHandler) ListStaff(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	result, err := h.listByRoleUC.Execute(c.Request.Context(), usecases.ListUsersByRoleQuery{
		Role:     authorization.RoleStaff.String(),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users := make([]UserResponse, len(result.Users))
	for i, u := range result.Users {
		users[i] = newUserResponse(u)
	}
	utils.ListSuccessResponse(c, users, result.Total, result.Page, result.PageSize)
}
