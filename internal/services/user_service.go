package services

import (
	"encoding/json"

	"clientapi/internal/models"
)

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) GetProfile(id json.Number) *models.UserProfile {
	return &models.UserProfile{
		UserID:    id,
		Title:     "Engr.",
		FirstName: "Bryce",
		LastName:  "Hernandez",
	}
}
