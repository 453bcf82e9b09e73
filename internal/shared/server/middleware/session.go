package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/reqctx"
)

const (
	userIDKey   = reqctx.UserIDKey
	userNameKey = reqctx.UserNameKey
)

// ErrNotAuthenticated indicates the request carries no valid session.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionVerifier validates a session token.
type SessionVerifier interface {
	VerifySession(token string) (auth.Identity, error)
}

// Session loads the identity from the signed session cookie, if any.
// Invalid or expired cookies leave the request anonymous.
func Session(cookieName string, verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if id, err := verifier.VerifySession(token); err == nil {
				c.Set(userIDKey, id.UserID)
				c.Set(userNameKey, id.Name)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to loginPath before any handler runs.
func RequireAuth(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := Authenticated(c); err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authenticated returns the request identity or ErrNotAuthenticated.
func Authenticated(c *gin.Context) (auth.Identity, error) {
	userID := UserIDFromContext(c)
	if userID == "" {
		return auth.Identity{}, ErrNotAuthenticated
	}
	return auth.Identity{UserID: userID, Name: c.GetString(userNameKey)}, nil
}

// UserIDFromContext fetches the user ID set by the session middleware.
func UserIDFromContext(c *gin.Context) string {
	return reqctx.UserID(c)
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// SetSessionCookie stores token in an HTTP-only cookie.
func SetSessionCookie(c *gin.Context, opts CookieOptions, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, token, int(opts.TTL/time.Second), "/", "", opts.Secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, "", -1, "/", "", opts.Secure, true)
}
