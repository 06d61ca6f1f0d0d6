package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/service"
	"github.com/khadamat/backend/internal/token"
	"go.uber.org/zap"
)

// Context keys for the authenticated caller
const (
	CtxUserID     = "user_id"
	CtxSessionJTI = "session_jti"
)

// AuthRequired validates the bearer token and checks its session is still
// live, then injects the caller's identity into the Gin context.
func AuthRequired(tokens *token.HSProvider, sessions service.SessionStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		active, err := sessions.Active(c.Request.Context(), claims.JTI)
		if err != nil {
			log.Warn("session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or revoked"})
			return
		}
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxSessionJTI, claims.JTI)
		c.Next()
	}
}

func ExtractBearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// UserID reads the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
