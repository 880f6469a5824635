package middleware

import (
	"net/http"
	"strings"

	"hostnhome/models"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
)

// AuthSessionKey is the gin context key holding the caller's *models.AuthSession.
const AuthSessionKey = "authSession"

// JWTAuth validates the bearer token and stores the caller's session in the context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := utils.SessionFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthSessionKey, session)
		c.Next()
	}
}

// GetAuthSession returns the session set by JWTAuth.
func GetAuthSession(c *gin.Context) (*models.AuthSession, bool) {
	v, ok := c.Get(AuthSessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.AuthSession)
	return session, ok && session != nil
}
