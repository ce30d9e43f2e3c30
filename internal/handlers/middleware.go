package handlers

import (
	"net/http"
	"strings"

	"metro-homes/internal/auth"
	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "authClaims"

// UserGetter is the lookup the role guards need.
type UserGetter interface {
	GetUserByEmail(email string) (*models.User, error)
}

// AuthRequired validates the bearer token and attaches the decoded
// claims to the request context. It never consults the database.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token given"})
			return
		}
		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims attached by AuthRequired.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RoleRequired permits the request only when the stored user passes the
// role predicate. It assumes AuthRequired already ran.
func RoleRequired(users UserGetter, allowed func(*models.User) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden Access"})
			return
		}
		user, err := users.GetUserByEmail(claims.Email)
		if err != nil || !allowed(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden Access"})
			return
		}
		c.Next()
	}
}

// AdminRequired guards admin-only routes.
func AdminRequired(users UserGetter) gin.HandlerFunc {
	return RoleRequired(users, (*models.User).IsAdmin)
}

// AgentRequired guards agent-only routes.
func AgentRequired(users UserGetter) gin.HandlerFunc {
	return RoleRequired(users, (*models.User).IsAgent)
}
