package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abelaguiar/api-hydro-time/config"
	"github.com/abelaguiar/api-hydro-time/utils"
)

// Context keys under which the authenticated identity is stored.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
)

// AuthMiddleware gates protected routes behind a Bearer token. The token is
// the second space-delimited segment of the Authorization header; anything
// else is treated as an absent token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)
	return func(c *gin.Context) {
		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) < 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token not provided"})
			return
		}

		claims, err := utils.ParseJWT(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}
