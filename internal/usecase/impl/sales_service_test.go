package impl

import (
	"context"
	"testing"

	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type salesFixture struct {
	sales     usecase.SalesUsecase
	customers usecase.CustomerUsecase
	inventory usecase.InventoryUsecase
}

func newSalesFixture(t *testing.T) *salesFixture {
	t.Helper()
	medium := newTestMedium()
	logger := newDiscardLogger()

	customers := NewCustomerService(newCustomerStore(medium), logger)
	inventory := NewInventoryService(newInventoryStore(medium), logger)
	sales := NewSalesService(newSaleStore(medium), customers, inventory, logger)

	return &salesFixture{sales: sales, customers: customers, inventory: inventory}
}

func (f *salesFixture) seedCustomer(t *testing.T, name string) *entity.Customer {
	t.Helper()
	customer, err := f.customers.Create(context.Background(), &entity.Customer{Name: name})
	require.NoError(t, err)

	return customer
}

func (f *salesFixture) seedItem(t *testing.T, code string, stock int) *entity.InventoryItem {
	t.Helper()
	item, err := f.inventory.Create(context.Background(), &entity.InventoryItem{ProductCode: code, Stock: stock})
	require.NoError(t, err)

	return item
}

func TestSalesService_CascadeSymmetry(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "Nguyen Van An")
	itemA := f.seedItem(t, "a", 10)
	itemB := f.seedItem(t, "b", 7)

	sale, err := f.sales.Create(ctx, &entity.Sale{
		CustomerID: customer.ID,
		Items:      []string{"a", "a", "b"}, // duplicate code decrements twice
		PaidAmount: 2500,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)

	afterCustomer, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2500, afterCustomer.TotalSpent, 0.001)
	assert.Equal(t, 2, afterCustomer.Points) // floor(2500/1000)

	afterA, err := f.inventory.Get(ctx, itemA.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, afterA.Stock)

	afterB, err := f.inventory.Get(ctx, itemB.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, afterB.Stock)

	// Reversal restores the exact initial state: net-zero round trip.
	require.NoError(t, f.sales.Delete(ctx, sale.ID))

	_, err = f.sales.Get(ctx, sale.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)

	restoredCustomer, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, restoredCustomer.TotalSpent)
	assert.Zero(t, restoredCustomer.Points)

	restoredA, err := f.inventory.Get(ctx, itemA.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, restoredA.Stock)

	restoredB, err := f.inventory.Get(ctx, itemB.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, restoredB.Stock)
}

func TestSalesService_PointsAreTruncated(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "An")

	_, err := f.sales.Create(ctx, &entity.Sale{CustomerID: customer.ID, PaidAmount: 1999})
	require.NoError(t, err)

	after, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Points)
}

func TestSalesService_ZeroAmountSkipsCustomerStep(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "An")
	item := f.seedItem(t, "a", 5)

	_, err := f.sales.Create(ctx, &entity.Sale{
		CustomerID: customer.ID,
		Items:      []string{"a"},
		PaidAmount: 0,
	})
	require.NoError(t, err)

	after, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, after.TotalSpent)
	assert.Zero(t, after.Points)

	// The stock step still runs.
	afterItem, err := f.inventory.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, afterItem.Stock)
}

func TestSalesService_EmptyItemsIsValid(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "An")

	sale, err := f.sales.Create(ctx, &entity.Sale{CustomerID: customer.ID, PaidAmount: 3000})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)

	after, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3000, after.TotalSpent, 0.001)
	assert.Equal(t, 3, after.Points)
}

func TestSalesService_StockRejectionDoesNotBlockSale(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "a", 0)

	// The sale is recorded even though the stock line cannot balance.
	sale, err := f.sales.Create(ctx, &entity.Sale{Items: []string{"a"}, PaidAmount: 1000})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)

	after, err := f.inventory.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Zero(t, after.Stock)
}

func TestSalesService_UnknownProductCodeIsSkipped(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	sale, err := f.sales.Create(ctx, &entity.Sale{Items: []string{"ghost"}, PaidAmount: 500})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)
}

func TestSalesService_UnknownCustomerDoesNotBlockSale(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	sale, err := f.sales.Create(ctx, &entity.Sale{CustomerID: "ghost", PaidAmount: 2000})
	require.NoError(t, err)
	require.NotEmpty(t, sale.ID)
}

func TestSalesService_DeleteMissingSale(t *testing.T) {
	f := newSalesFixture(t)

	err := f.sales.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
}

func TestSalesService_ByCustomer(t *testing.T) {
	f := newSalesFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "An")

	_, err := f.sales.Create(ctx, &entity.Sale{CustomerID: customer.ID, PaidAmount: 1000})
	require.NoError(t, err)
	_, err = f.sales.Create(ctx, &entity.Sale{CustomerID: "other", PaidAmount: 1000})
	require.NoError(t, err)

	assert.Len(t, f.sales.ByCustomer(ctx, customer.ID), 1)
}
