package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientapi/internal/models"
)

const (
	DocsPath  = "/docs"
	RedocPath = "/redoc"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Welcome is intentionally left out of the API docs.
func (h *RootHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.Welcome{
		Message: "Welcome to the client objects API!",
		Docs:    DocsPath,
		Redoc:   RedocPath,
	})
}

func (h *RootHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>clientapi - ReDoc</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="` + DocsPath + `/doc.json"></redoc>
    <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
  </body>
</html>`

// Redoc serves a ReDoc page over the same OpenAPI document Swagger UI uses.
func (h *RootHandler) Redoc(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
}
