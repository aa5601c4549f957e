package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "redress/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	ThrottleLogins gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.ThrottleLogins != nil {
		auth.Use(config.ThrottleLogins)
	}
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.Refresh)
	}
}
