// Package record implements the generic record store: one keyed
// collection per entity type, serialized as a single snapshot into the
// key-value medium and rewritten whole on every mutation.
package record

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
)

// Store is the generic keyed collection for one entity type. It knows
// nothing about T beyond its identifier; domain invariants belong to
// the services layered on top.
//
// Persistence trades O(n) writes for atomicity-by-replacement: every
// mutation marshals the full collection and stores it as one value, so
// the medium never holds a partially written collection.
type Store[T repository.Identifiable] struct {
	key    string
	medium repository.KeyValue
	events service.ChangePublisher
	logger *slog.Logger
}

var _ repository.RecordStore[*noopRecord] = (*Store[*noopRecord])(nil)

// NewStore creates a store over the given storage slot.
func NewStore[T repository.Identifiable](
	key string,
	medium repository.KeyValue,
	events service.ChangePublisher,
	logger *slog.Logger,
) *Store[T] {
	return &Store[T]{
		key:    key,
		medium: medium,
		events: events,
		logger: logger,
	}
}

// All returns every stored record in storage order. An absent, corrupt
// or unreadable slot degrades to an empty result with a logged warning
// so a damaged cache never makes the application unusable.
func (s *Store[T]) All(ctx context.Context) []T {
	return s.load(ctx)
}

// ByID returns the record with the given identifier, if any. Absence
// is not an error.
func (s *Store[T]) ByID(ctx context.Context, id string) (T, bool) {
	for _, item := range s.load(ctx) {
		if item.Identity() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Create appends item and persists the collection. An identifier is
// generated when the caller supplied none.
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	if item.Identity() == "" {
		item.SetIdentity(generateID())
	}

	records := append(s.load(ctx), item)
	if err := s.persist(ctx, records); err != nil {
		var zero T

		return zero, err
	}

	return item, nil
}

// Update shallow-merges fields onto the stored record. Fields absent
// from the partial stay untouched; the identifier is immutable and
// silently skipped if present in fields.
func (s *Store[T]) Update(ctx context.Context, id string, fields map[string]any) (T, bool, error) {
	var zero T

	records := s.load(ctx)
	for i, item := range records {
		if item.Identity() != id {
			continue
		}

		merged, err := mergeFields(item, fields)
		if err != nil {
			return zero, true, err
		}
		merged.SetIdentity(id)

		records[i] = merged
		if err := s.persist(ctx, records); err != nil {
			return zero, true, err
		}

		return merged, true, nil
	}

	return zero, false, nil
}

// Delete removes the record if present and reports whether a removal
// occurred.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	records := s.load(ctx)
	for i, item := range records {
		if item.Identity() != id {
			continue
		}

		records = append(records[:i], records[i+1:]...)
		if err := s.persist(ctx, records); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

// Search returns records matching every criterion: case-insensitive
// substring for strings, plain equality for everything else. Criteria
// keys are the entity's JSON field names.
func (s *Store[T]) Search(ctx context.Context, criteria map[string]any) []T {
	matches := make([]T, 0)
	for _, item := range s.load(ctx) {
		if matchesCriteria(item, criteria) {
			matches = append(matches, item)
		}
	}

	return matches
}

// Count returns the number of stored records.
func (s *Store[T]) Count(ctx context.Context) int {
	return len(s.load(ctx))
}

// Seed populates the slot only when it is currently empty, so the
// bootstrap can run on every start without ever clobbering user data.
func (s *Store[T]) Seed(ctx context.Context, records []T) error {
	if len(s.load(ctx)) > 0 {
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	return s.persist(ctx, records)
}

// load reads and decodes the full collection. Every failure mode, from
// a missing slot to tampered JSON, degrades to empty.
func (s *Store[T]) load(ctx context.Context) []T {
	raw, ok, err := s.medium.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("storage slot unreadable, treating as empty",
			slog.String("key", s.key), slog.Any("error", err))

		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("storage slot corrupt, treating as empty",
			slog.String("key", s.key), slog.Any("error", err))

		return nil
	}

	return records
}

// persist writes the whole collection back as one unit and fires the
// change notification. Write failures surface as a domain error; a
// silently lost write is unacceptable.
func (s *Store[T]) persist(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return domainerrors.NewStorageWriteError(err, "marshal collection "+s.key)
	}

	if err := s.medium.Set(ctx, s.key, string(raw)); err != nil {
		return domainerrors.NewStorageWriteError(err, "write collection "+s.key)
	}

	s.events.StorageChanged(s.key)

	return nil
}

// generateID builds an identifier from a high-resolution timestamp and
// a random suffix. Collisions require two creations in the same
// nanosecond drawing the same four random bytes.
func generateID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing means the runtime is broken; fall back
		// to the timestamp alone rather than aborting a create.
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + hex.EncodeToString(suffix)
}

// mergeFields shallow-merges partial fields onto item by JSON round
// trip, mirroring how the collection itself is serialized. The "id"
// field is dropped from the partial so identifiers stay immutable.
func mergeFields[T repository.Identifiable](item T, fields map[string]any) (T, error) {
	var zero T

	base, err := toFieldMap(item)
	if err != nil {
		return zero, domainerrors.NewStorageWriteError(err, "decode record for merge")
	}

	for name, value := range fields {
		if name == "id" {
			continue
		}
		base[name] = value
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return zero, domainerrors.NewStorageWriteError(err, "encode merged record")
	}

	var merged T
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, domainerrors.NewStorageWriteError(err, "decode merged record")
	}

	return merged, nil
}

// matchesCriteria reports whether every criterion holds for item.
func matchesCriteria[T repository.Identifiable](item T, criteria map[string]any) bool {
	if len(criteria) == 0 {
		return true
	}

	fields, err := toFieldMap(item)
	if err != nil {
		return false
	}

	for name, want := range criteria {
		got, ok := fields[name]
		if !ok {
			return false
		}
		if !fieldMatches(got, want) {
			return false
		}
	}

	return true
}

// fieldMatches compares one stored field against one criterion value:
// substring fold for strings, JSON-normalized equality otherwise.
func fieldMatches(got, want any) bool {
	if wantStr, ok := want.(string); ok {
		gotStr, ok := got.(string)
		if !ok {
			return false
		}

		return strings.Contains(strings.ToLower(gotStr), strings.ToLower(wantStr))
	}

	return normalize(got) == normalize(want)
}

// normalize funnels both sides through JSON so 1 (int) and 1.0
// (decoded float64) compare equal.
func normalize(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(raw)
}

// toFieldMap converts a record to its JSON field map.
func toFieldMap(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// noopRecord exists only to pin the RecordStore interface assertion.
type noopRecord struct {
	ID string `json:"id"`
}

func (r *noopRecord) Identity() string      { return r.ID }
func (r *noopRecord) SetIdentity(id string) { r.ID = id }
