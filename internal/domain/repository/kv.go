// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Storage slot keys. Each entity type owns exactly one slot holding a
// complete serialized snapshot of its collection; the session fields
// are single serialized scalars written by the login flow.
const (
	KeyCustomers = "salepoint.customers"
	KeyInventory = "salepoint.inventory"
	KeySales     = "salepoint.sales"
	KeyVouchers  = "salepoint.vouchers"

	KeySessionToken = "salepoint.session.token"
	KeySessionUser  = "salepoint.session.user"
	KeySessionLogin = "salepoint.session.loginAt"
)

// KeyValue is the storage medium: a synchronous key to string map.
// Get reports presence separately from failure so an absent key is not
// an error. Implementations must make Set replace the whole value as
// one unit; there is no partial write in this model.
type KeyValue interface {
	// Get returns the value stored under key, and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
