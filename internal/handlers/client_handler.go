package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clientapi/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// GetObjects godoc
// @Summary      Client objects
// @Description  Loads assets, contact details and pensions concurrently and returns them together
// @Tags         clients
// @Produce      json
// @Param        client_id  path      int  true  "Client ID"
// @Success      200        {object}  models.ClientObjects
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /clients/{client_id}/objects [get]
func (h *ClientHandler) GetObjects(c *gin.Context) {
	id, ok := intParam(c, "client_id")
	if !ok {
		return
	}
	objects, err := h.Service.GetObjects(c.Request.Context(), id)
	if err != nil {
		log.Printf("[ERROR] GetObjects client=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load client objects"})
		return
	}
	c.JSON(http.StatusOK, objects)
}
