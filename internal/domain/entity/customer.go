// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// CustomerStatus enumerates the lifecycle states of a customer account.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer represents a buyer known to the business.
//
// TotalSpent and Points are derived balances: they must only change
// through sale registration and reversal, never through a direct edit.
type Customer struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`  // Display name, used for substring search.
	Phone      string         `json:"phone"` // Natural secondary key for lookups and voucher references.
	Email      string         `json:"email"`
	Address    string         `json:"address"`
	TotalSpent float64        `json:"totalSpent"` // Accumulated paid amount across completed sales.
	Points     int            `json:"points"`     // Loyalty balance awarded from spend.
	TotalDebt  float64        `json:"totalDebt"`
	Status     CustomerStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Identity returns the unique identifier of the customer.
func (c *Customer) Identity() string { return c.ID }

// SetIdentity assigns the store-generated identifier.
func (c *Customer) SetIdentity(id string) { c.ID = id }
