package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"consultly/utils"
)

// JWTAuthProfessionalMiddleware validates a token issued by the identity
// collaborator and binds the authenticated professional id to the context.
// Token issuance and account management happen outside this service.
func JWTAuthProfessionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if role != "professional" && role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Professional access required"})
			return
		}

		c.Set("professionalID", subject)
		c.Set("role", role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
