package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "redress/internal/interfaces/http/handlers/user"
	"redress/internal/interfaces/http/middleware"
	"redress/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", config.UserHandler.Me)
		users.PUT("/me/password", config.UserHandler.ChangePassword)

		users.GET("/staff",
			authorization.RequireAdmin(),
			config.UserHandler.ListStaff)

		users.POST("",
			authorization.RequireAdmin(),
			config.UserHandler.CreateUser)
		users.GET("",
			authorization.RequireAdmin(),
			config.UserHandler.ListUsers)
	}
}
