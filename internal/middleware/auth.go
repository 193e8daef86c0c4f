package middleware

import (
	"log"
	"net/http"
	"strings"

	"bt2horizon/internal/pkg/jwt"
	"bt2horizon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
	CtxViaKey = "via_admin_key"

	headerAdminKey = "x-admin-key"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// RequireAuth rejects the request unless a valid JWT is presented.
func RequireAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims, err := j.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth decodes a JWT when present but lets anonymous requests
// through. Endpoints with per-row visibility (requests, chat) use it.
func OptionalAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := j.ValidateToken(token); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxEmail, claims.Email)
				c.Set(CtxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireAdmin accepts an admin JWT, or the static admin key kept for
// the legacy admin panel. Key-based access carries no user identity;
// every use is logged as an audit trail.
func RequireAdmin(j *jwt.Service, adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := j.ValidateToken(token); err == nil && claims.Role == "admin" {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxEmail, claims.Email)
				c.Set(CtxRole, claims.Role)
				c.Next()
				return
			}
		}

		if key := c.GetHeader(headerAdminKey); key != "" && adminKey != "" && key == adminKey {
			log.Printf("admin key used for %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			c.Set(CtxRole, "admin")
			c.Set(CtxViaKey, true)
			c.Next()
			return
		}

		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
	}
}

// IsAdmin reports whether the current request carries admin rights,
// via JWT role or the admin key.
func IsAdmin(c *gin.Context) bool {
	role, _ := c.Get(CtxRole)
	return role == "admin"
}

// CallerID returns the authenticated user id, or 0 for anonymous and
// key-authenticated callers.
func CallerID(c *gin.Context) int64 {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
