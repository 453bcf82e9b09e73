package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const msgNoRecord = "No resume found."

// Handler wires HTTP handlers to the service. Every route expects RequireAuth in front.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to an authenticated group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/builder", h.builder)
	rg.POST("/save_resume", h.save)
	rg.GET("/generate", h.generate)
}

func (h *Handler) builder(c *gin.Context) {
	id, err := middleware.Authenticated(c)
	if err != nil {
		respond.Redirect(c, "/auth")
		return
	}
	c.HTML(http.StatusOK, "builder.html", gin.H{"Name": id.Name})
}

func (h *Handler) save(c *gin.Context) {
	id, err := middleware.Authenticated(c)
	if err != nil {
		respond.Redirect(c, "/auth")
		return
	}

	fields := Fields{
		FullName:   c.PostForm("full_name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Summary:    c.PostForm("summary"),
		Skills:     c.PostForm("skills"),
		Experience: c.PostForm("experience"),
		Education:  c.PostForm("education"),
	}
	if _, err := h.Svc.Save(c.Request.Context(), id.UserID, fields); err != nil {
		respond.Internal(c, err)
		return
	}
	respond.Redirect(c, "/generate")
}

func (h *Handler) generate(c *gin.Context) {
	id, err := middleware.Authenticated(c)
	if err != nil {
		respond.Redirect(c, "/auth")
		return
	}

	data, err := h.Svc.Generate(c.Request.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			respond.Text(c, msgNoRecord)
			return
		}
		respond.Internal(c, err)
		return
	}
	respond.Attachment(c, DownloadName, MimePDF, data)
}
