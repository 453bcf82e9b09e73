// Package reqctx owns the gin context keys shared by middleware and responders.
package reqctx

import "github.com/gin-gonic/gin"

const (
	RequestIDKey = "requestId"
	UserIDKey    = "userId"
	UserNameKey  = "userName"
)

// RequestID returns the id stored by the request id middleware.
func RequestID(c *gin.Context) string {
	return stringValue(c, RequestIDKey)
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return stringValue(c, UserIDKey)
}

func stringValue(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
