package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose authenticated role is not admin.
// It must run after the JWT middleware has set user_role.
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(RoleAdmin)
}

// RequireStaff admits staff and admin callers.
func RequireStaff() gin.HandlerFunc {
	return requireRoles(RoleStaff, RoleAdmin)
}

func requireRoles(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID implements the owner-or-admin visibility rule.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
