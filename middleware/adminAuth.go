package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"consultly/config"
	"consultly/utils"
)

// JWTAuthAdminMiddleware gates the approval endpoints. It accepts either a
// collaborator-issued JWT carrying the admin role, or the static operator
// token from configuration.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		if config.AppConfig.AdminToken != "" && tokenString == config.AppConfig.AdminToken {
			c.Set("isAdmin", true)
			c.Next()
			return
		}

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
