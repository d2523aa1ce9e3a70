package record

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures the keys announced by the store.
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) StorageChanged(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
}

func (p *recordingPublisher) Subscribe(service.ChangeListener) func() { return func() {} }

var _ service.ChangePublisher = (*recordingPublisher)(nil)

// failingMedium rejects every write, simulating a quota failure.
type failingMedium struct {
	repository.KeyValue
	err error
}

func (m *failingMedium) Set(context.Context, string, string) error { return m.err }

func newCustomerStore(t *testing.T) (*Store[*entity.Customer], *recordingPublisher, repository.KeyValue) {
	t.Helper()
	medium := kv.NewMemory()
	events := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStore[*entity.Customer](repository.KeyCustomers, medium, events, logger), events, medium
}

func TestStore_CreateRoundTrip(t *testing.T) {
	store, events, _ := newCustomerStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &entity.Customer{Name: "Nguyen Van An", Phone: "0901234567"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, ok := store.ByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "Nguyen Van An", got.Name)
	assert.Equal(t, "0901234567", got.Phone)
	assert.Equal(t, created.ID, got.ID)

	assert.Equal(t, []string{repository.KeyCustomers}, events.keys)
}

func TestStore_CreateKeepsCallerSuppliedID(t *testing.T) {
	store, _, _ := newCustomerStore(t)

	created, err := store.Create(context.Background(), &entity.Customer{ID: "cust-1", Name: "Tran Thi Binh"})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", created.ID)
}

func TestStore_GeneratedIDsAreUnique(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 50 {
		created, err := store.Create(ctx, &entity.Customer{Name: "x"})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestStore_DeleteCompleteness(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, &entity.Customer{Name: "a"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &entity.Customer{Name: "b"})
	require.NoError(t, err)

	before := store.Count(ctx)

	removed, err := store.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok := store.ByID(ctx, first.ID)
	assert.False(t, ok)
	assert.Equal(t, before-1, store.Count(ctx))

	removed, err = store.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_UpdateShallowMerge(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &entity.Customer{Name: "Le Van Cuong", Phone: "0987", Points: 10})
	require.NoError(t, err)

	updated, found, err := store.Update(ctx, created.ID, map[string]any{"points": 25})
	require.NoError(t, err)
	require.True(t, found)

	// Untouched fields survive the merge, the identifier stays put.
	assert.Equal(t, 25, updated.Points)
	assert.Equal(t, "Le Van Cuong", updated.Name)
	assert.Equal(t, "0987", updated.Phone)
	assert.Equal(t, created.ID, updated.ID)
}

func TestStore_UpdateIgnoresIDField(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &entity.Customer{Name: "x"})
	require.NoError(t, err)

	updated, found, err := store.Update(ctx, created.ID, map[string]any{"id": "hijacked", "name": "y"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "y", updated.Name)
}

func TestStore_UpdateMissingIsNotAnError(t *testing.T) {
	store, _, _ := newCustomerStore(t)

	_, found, err := store.Update(context.Background(), "nope", map[string]any{"name": "y"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SearchSubstringCaseInsensitive(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &entity.Customer{Name: "Nguyen Van An"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &entity.Customer{Name: "Tran Thi Binh"})
	require.NoError(t, err)

	matches := store.Search(ctx, map[string]any{"name": "an"})
	require.Len(t, matches, 1)
	assert.Equal(t, "Nguyen Van An", matches[0].Name)
}

func TestStore_SearchNonStringEquality(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &entity.Customer{Name: "a", Points: 5})
	require.NoError(t, err)
	_, err = store.Create(ctx, &entity.Customer{Name: "b", Points: 50})
	require.NoError(t, err)

	matches := store.Search(ctx, map[string]any{"points": 50})
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].Name)
}

func TestStore_SeedOnlyWhenEmpty(t *testing.T) {
	store, _, _ := newCustomerStore(t)
	ctx := context.Background()

	seed := []*entity.Customer{
		{ID: "c1", Name: "Nguyen Van An"},
		{ID: "c2", Name: "Tran Thi Binh"},
	}

	require.NoError(t, store.Seed(ctx, seed))
	assert.Equal(t, 2, store.Count(ctx))

	// Second call is a no-op: the slot is no longer empty.
	require.NoError(t, store.Seed(ctx, seed))
	assert.Equal(t, 2, store.Count(ctx))
}

func TestStore_CorruptSlotDegradesToEmpty(t *testing.T) {
	store, _, medium := newCustomerStore(t)
	ctx := context.Background()

	require.NoError(t, medium.Set(ctx, repository.KeyCustomers, "{not json"))

	assert.Empty(t, store.All(ctx))
	assert.Zero(t, store.Count(ctx))

	// The store stays usable: the next write replaces the garbage.
	_, err := store.Create(ctx, &entity.Customer{Name: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestStore_WriteFailurePropagates(t *testing.T) {
	events := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	medium := &failingMedium{KeyValue: kv.NewMemory(), err: assert.AnError}
	store := NewStore[*entity.Customer](repository.KeyCustomers, medium, events, logger)

	_, err := store.Create(context.Background(), &entity.Customer{Name: "x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_WRITE_FAILED", appErr.ErrorCode())

	// No change event on a failed write.
	assert.Empty(t, events.keys)
}
