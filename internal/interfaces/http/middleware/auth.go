package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userUC "redress/internal/application/user/usecases"
	"redress/internal/infrastructure/auth"
	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      userUC.GetUserByUUIDExecutor
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, users userUC.GetUserByUUIDExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and resolves the claims' UUID to a
// live account, so a deleted user's token stops working immediately. It
// sets user_id, user_uuid and user_role on the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		account, err := m.users.Execute(c.Request.Context(), userUC.GetUserByUUIDQuery{UUID: claims.UserUUID})
		if err != nil {
			m.logger.Warnw("token references unknown user", "uuid", claims.UserUUID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", account.UserID)
		c.Set("user_uuid", account.UUID)
		c.Set("user_role", account.Role)

		c.Next()
	}
}
