package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	userIDKey     = "user_id"
)

// RequireSession aborts with 401 unless the request carries a valid session
// token, either in the session cookie or as a bearer token.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(sessionCookie)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		claims, err := h.tokens.Parse(token)
		if err != nil {
			h.logger.WithError(err).Debug("Rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *Handler) startSession(c *gin.Context, userID int64) (string, error) {
	token, err := h.tokens.Issue(userID)
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(h.tokens.TTL().Seconds()), "/", "", false, true)
	return token, nil
}

func sessionUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
