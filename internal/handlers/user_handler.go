package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientapi/internal/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUserByID godoc
// @Summary      User profile
// @Tags         users
// @Produce      json
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  models.UserProfile
// @Failure      400      {object}  map[string]string
// @Router       /users/{user_id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := intParam(c, "user_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.GetProfile(id))
}
