package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

const (
	msgDuplicateAccount   = "Email already registered."
	msgInvalidCredentials = "Invalid credentials."
)

// SessionSigner issues session tokens for authenticated identities.
type SessionSigner interface {
	SignSession(id auth.Identity) (string, error)
}

type Handler struct {
	Svc    *Service
	Signer SessionSigner
	Cookie middleware.CookieOptions
}

func NewHandler(svc *Service, signer SessionSigner, cookie middleware.CookieOptions) *Handler {
	return &Handler{Svc: svc, Signer: signer, Cookie: cookie}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) register(c *gin.Context) {
	form, ok := requiredForm(c, "name", "email", "password")
	if !ok {
		return
	}

	err := h.Svc.Register(c.Request.Context(), form["name"], form["email"], form["password"])
	switch {
	case errors.Is(err, users.ErrDuplicateAccount):
		respond.Text(c, msgDuplicateAccount)
	case err != nil:
		respond.Internal(c, err)
	default:
		respond.Redirect(c, "/auth")
	}
}

func (h *Handler) login(c *gin.Context) {
	form, ok := requiredForm(c, "email", "password")
	if !ok {
		return
	}

	id, err := h.Svc.Login(c.Request.Context(), form["email"], form["password"])
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Text(c, msgInvalidCredentials)
			return
		}
		respond.Internal(c, err)
		return
	}

	token, err := h.Signer.SignSession(id)
	if err != nil {
		respond.Internal(c, err)
		return
	}
	middleware.SetSessionCookie(c, h.Cookie, token)
	respond.Redirect(c, "/builder")
}

func (h *Handler) logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.Cookie)
	respond.Redirect(c, "/")
}

// requiredForm reads the named form fields, answering 400 when one is absent.
func requiredForm(c *gin.Context, names ...string) (map[string]string, bool) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		v, ok := c.GetPostForm(name)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "Missing form field: "+name, nil)
			return nil, false
		}
		values[name] = v
	}
	return values, true
}
