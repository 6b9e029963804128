package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff guards mutating routes: any authenticated user may read,
// writes need the staff flag issued at login. Must run after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if staff, ok := ctx.Get("isStaff"); !ok || staff != true {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
