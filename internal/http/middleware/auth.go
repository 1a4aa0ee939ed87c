package middleware

import (
	"net/http"
	"strings"

	"orgchart/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "userID"
	usernameKey = "username"
)

// TokenParser verifies a bearer token and returns the caller.
type TokenParser interface {
	Parse(raw string) (domain.RequestContext, error)
}

// RequireAuth rejects requests without a valid bearer token. On success the
// caller's id and username are stored on the gin context.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			AbortWithError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		rc, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(UserIDKey, rc.UserID)
		c.Set(usernameKey, rc.Username)
		c.Next()
	}
}

// CurrentUser returns the identity stored by RequireAuth.
func CurrentUser(c *gin.Context) (domain.RequestContext, bool) {
	id, ok := c.Get(UserIDKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	uid, ok := id.(domain.ID)
	if !ok {
		return domain.RequestContext{}, false
	}
	return domain.RequestContext{UserID: uid, Username: c.GetString(usernameKey)}, true
}
