package domain

import (
	"errors"
	"time"
)

// RequestStatus is the review state of a credit request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// Valid reports whether s is one of the known review states.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var ErrCreditRequestNotFound = errors.New("credit request not found")
var ErrInvalidStatus = errors.New("status must be Pending, Approved, or Rejected")

// CreditRequest is a facility request raised by an RM against one of their
// clients. Status and remarks are mutated only by an analyst review.
type CreditRequest struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"clientId"`
	SubmittedBy   string        `json:"submittedBy"`
	RequestAmount float64       `json:"requestAmount"`
	TenureMonths  int           `json:"tenureMonths"`
	Purpose       string        `json:"purpose"`
	Status        RequestStatus `json:"status"`
	Remarks       string        `json:"remarks"`
	CreatedAt     time.Time     `json:"createdAt"`
}
