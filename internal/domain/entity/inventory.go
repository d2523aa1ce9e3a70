package entity

import "time"

// InventoryItem is one stocked product.
//
// ProductCode is the natural key sales refer to; it is expected to be
// unique but the store does not enforce it. Stock must never go below
// zero, enforced at the service mutator rather than here.
type InventoryItem struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"productCode"`
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"` // Threshold for low-stock queries.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Identity returns the unique identifier of the item.
func (i *InventoryItem) Identity() string { return i.ID }

// SetIdentity assigns the store-generated identifier.
func (i *InventoryItem) SetIdentity(id string) { i.ID = id }
