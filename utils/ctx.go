package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middlewares.
const (
	UserIDKey = "userId"
	RoleKey   = "role"
)

// CurrentUserID is the authenticated user, 0 when the route is public.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(RoleKey)
}
