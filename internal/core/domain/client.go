package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")

// PrimaryContact is the person reachable at a corporate client.
type PrimaryContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Client is a corporate customer onboarded by a relationship manager.
// RMID is the owning RM; every read and write is scoped to it.
type Client struct {
	ID                 string         `json:"id"`
	CompanyName        string         `json:"companyName"`
	Industry           string         `json:"industry"`
	Address            string         `json:"address"`
	PrimaryContact     PrimaryContact `json:"primaryContact"`
	AnnualTurnover     float64        `json:"annualTurnover"`
	DocumentsSubmitted bool           `json:"documentsSubmitted"`
	RMID               string         `json:"rmId"`
}
