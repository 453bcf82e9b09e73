package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/account"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/web"
)

const (
	loginPage      = "/auth"
	authRateGroup  = "AUTH"
	releaseModeEnv = "production"
)

// RouterDeps carries the handlers and collaborators the router mounts.
type RouterDeps struct {
	Config         config.Config
	Templates      *template.Template
	Sessions       middleware.SessionVerifier
	AccountHandler *account.Handler
	ResumeHandler  *resumes.Handler
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == releaseModeEnv {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if deps.Templates != nil {
		r.SetHTMLTemplate(deps.Templates)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.Session(deps.Config.SessionCookie, deps.Sessions),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: authRateGroupFor,
			Limiter:  deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				authRateGroup: {Rate: deps.Config.AuthRatePerSec, Burst: deps.Config.AuthRateBurst},
			},
		}),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	web.RegisterRoutes(r)
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(r)
	}

	if deps.ResumeHandler != nil {
		authed := r.Group("/")
		authed.Use(middleware.RequireAuth(loginPage))
		deps.ResumeHandler.RegisterRoutes(authed)
	}

	return r
}

// authRateGroupFor limits credential submissions only.
func authRateGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/login", "/register":
		return authRateGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
