package entity

import "time"

// SaleStatus enumerates the states of a recorded sale.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
	SaleCancelled SaleStatus = "cancelled"
)

// Sale records one checkout.
//
// CustomerID is a weak reference: the customer may have been deleted
// since, and no foreign-key check exists. Items holds product codes,
// not item IDs; each listed code represents exactly one unit, so a
// code appearing twice means two units were sold.
type Sale struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Items      []string   `json:"items"`
	PaidAmount float64    `json:"paidAmount"`
	Status     SaleStatus `json:"status"`
	Note       string     `json:"note"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Identity returns the unique identifier of the sale.
func (s *Sale) Identity() string { return s.ID }

// SetIdentity assigns the store-generated identifier.
func (s *Sale) SetIdentity(id string) { s.ID = id }
