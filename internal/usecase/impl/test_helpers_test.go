package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"salepoint/config"
	"salepoint/internal/domain/entity"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/infra/kv"
	"salepoint/internal/infra/persistence/record"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(timeout, interval, debounce time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Timeout:        timeout,
			CheckInterval:  interval,
			NoticeDebounce: debounce,
		},
	}
}

// nullPublisher drops change events; service tests assert on state,
// not notifications.
type nullPublisher struct{}

func (nullPublisher) StorageChanged(string)                   {}
func (nullPublisher) Subscribe(service.ChangeListener) func() { return func() {} }

var _ service.ChangePublisher = nullPublisher{}

// recordingNotifier captures user-facing notices.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, message)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.notices)
}

// staticDirectory vends a fixed business list and counts fetches.
type staticDirectory struct {
	businesses []*entity.Business
	err        error

	mu    sync.Mutex
	calls int
}

func (d *staticDirectory) ListBusinesses(context.Context) ([]*entity.Business, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}

	return d.businesses, nil
}

func (d *staticDirectory) fetchCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.calls
}

func newCustomerStore(medium repository.KeyValue) repository.RecordStore[*entity.Customer] {
	return record.NewStore[*entity.Customer](repository.KeyCustomers, medium, nullPublisher{}, newDiscardLogger())
}

func newInventoryStore(medium repository.KeyValue) repository.RecordStore[*entity.InventoryItem] {
	return record.NewStore[*entity.InventoryItem](repository.KeyInventory, medium, nullPublisher{}, newDiscardLogger())
}

func newSaleStore(medium repository.KeyValue) repository.RecordStore[*entity.Sale] {
	return record.NewStore[*entity.Sale](repository.KeySales, medium, nullPublisher{}, newDiscardLogger())
}

func newVoucherStore(medium repository.KeyValue) repository.RecordStore[*entity.Voucher] {
	return record.NewStore[*entity.Voucher](repository.KeyVouchers, medium, nullPublisher{}, newDiscardLogger())
}

func newTestMedium() repository.KeyValue {
	return kv.NewMemory()
}
