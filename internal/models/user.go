package models

import "encoding/json"

type UserProfile struct {
	UserID    json.Number `json:"userId"`
	Title     string      `json:"title"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

type Welcome struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Redoc   string `json:"redoc"`
}
