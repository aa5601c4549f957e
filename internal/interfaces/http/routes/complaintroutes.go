package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "redress/internal/interfaces/http/handlers/complaint"
	"redress/internal/interfaces/http/middleware"
	"redress/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones to avoid route conflicts.
		complaints.GET("/stats",
			authorization.RequireAdmin(),
			config.ComplaintHandler.GetStatistics)
		complaints.GET("/export",
			config.ComplaintHandler.ExportComplaints)

		complaints.POST("", config.ComplaintHandler.CreateComplaint)
		complaints.GET("", config.ComplaintHandler.ListComplaints)

		complaints.POST("/:id/assign",
			authorization.RequireAdmin(),
			config.ComplaintHandler.AssignComplaint)
		complaints.PATCH("/:id/status",
			authorization.RequireStaff(),
			config.ComplaintHandler.UpdateStatus)
		complaints.POST("/:id/comments",
			authorization.RequireStaff(),
			config.ComplaintHandler.AddComment)
		complaints.GET("/:id/comments",
			config.ComplaintHandler.ListComments)

		complaints.GET("/:id", config.ComplaintHandler.GetComplaint)
		complaints.DELETE("/:id", config.ComplaintHandler.DeleteComplaint)
	}

	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.GET("/mine",
			authorization.RequireStaff(),
			config.ComplaintHandler.MyComments)
		comments.DELETE("/:comment_id",
			authorization.RequireAdmin(),
			config.ComplaintHandler.DeleteComment)
	}
}
