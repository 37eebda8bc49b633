package middlewares

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/api/respond"
	"github.com/aliskhannn/jobden/pkg/token"
)

const (
	userIDKey           = "user_id"
	internalTokenHeader = "X-Internal-Token"
)

type tokenParser interface {
	Parse(raw string) (token.Claims, error)
}

// JWTAuth validates the Bearer access token and stores the user id in the context.
func JWTAuth(tokens tokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || raw == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("missing bearer token"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("path", c.FullPath()).Msg("rejected access token")
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("could not validate credentials"))
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the user id stored by JWTAuth.
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}

// InternalAuth guards endpoints called by other backend services.
func InternalAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(internalTokenHeader)
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("invalid internal token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
