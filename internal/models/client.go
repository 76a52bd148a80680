package models

import "encoding/json"

// AssetRecord is a single asset held by a client.
type AssetRecord struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ContactDetails holds the ways a client can be reached.
type ContactDetails struct {
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Handle string `json:"handle"`
}

// PensionRecord is a pension plan with its maturity date.
type PensionRecord struct {
	Name     string `json:"name"`
	Maturity string `json:"maturity"`
}

// ClientObjects is the combined payload of GET /clients/:client_id/objects.
// ClientID is an integer of any size, echoed back in canonical form.
type ClientObjects struct {
	ClientID       json.Number     `json:"clientId"`
	ContactDetails ContactDetails  `json:"contact_details"`
	Assets         []AssetRecord   `json:"assets"`
	Pensions       []PensionRecord `json:"pensions"`
}
