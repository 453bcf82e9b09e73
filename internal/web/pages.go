// Package web serves the HTML pages of the site.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}

// RegisterRoutes attaches the public pages.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/", page("index.html"))
	r.GET("/auth", page("auth.html"))
}

func page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}
