package repository

import "context"

// Identifiable is the only capability the generic record store demands
// of an entity: an identifier it can read and, at creation time, assign.
// Entities implement it with pointer receivers so SetIdentity sticks.
type Identifiable interface {
	Identity() string
	SetIdentity(id string)
}

// RecordStore is the contract for one entity type's keyed collection,
// backed by a single whole-collection snapshot per mutation.
//
// Error contract: reads never fail (corruption degrades to empty),
// absence is a false flag rather than an error, and only a failed
// write of the snapshot surfaces as an error.
type RecordStore[T Identifiable] interface {
	// All returns every stored record in storage order. An absent or
	// unreadable slot yields an empty slice, never an error.
	All(ctx context.Context) []T

	// ByID returns the record with the given identifier, if any.
	ByID(ctx context.Context, id string) (T, bool)

	// Create appends item and persists the collection. When the item
	// carries no identifier one is generated. The stored record,
	// including its identifier, is returned.
	Create(ctx context.Context, item T) (T, error)

	// Update shallow-merges fields onto the record with the given
	// identifier and persists. The found flag is false when no such
	// record exists; err is reserved for persistence failures.
	Update(ctx context.Context, id string, fields map[string]any) (updated T, found bool, err error)

	// Delete removes the record if present and reports whether a
	// removal occurred.
	Delete(ctx context.Context, id string) (bool, error)

	// Search returns records matching every given criterion. String
	// fields match by case-insensitive substring, all other fields by
	// equality. Keys are the entity's JSON field names.
	Search(ctx context.Context, criteria map[string]any) []T

	// Count returns the number of stored records.
	Count(ctx context.Context) int

	// Seed populates the slot with the given records only when it is
	// currently empty, so existing user data is never overwritten.
	Seed(ctx context.Context, records []T) error
}
