// Package seed bootstraps demo data into empty storage so a fresh
// install starts with something to look at. Each collection is seeded
// only when its slot is empty; existing data is never touched.
package seed

import (
	"context"
	"log/slog"
	"time"

	"salepoint/config"
	"salepoint/internal/domain/entity"
	"salepoint/internal/domain/repository"

	"github.com/pkg/errors"
)

// Stores collects the record stores the bootstrap fills.
type Stores struct {
	Customers repository.RecordStore[*entity.Customer]
	Inventory repository.RecordStore[*entity.InventoryItem]
	Vouchers  repository.RecordStore[*entity.Voucher]
}

// Run seeds demo data when enabled in config. Sales are deliberately
// not seeded; they only come into existence through the sale cascade.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stores Stores) error {
	if cfg.Seed == nil || !cfg.Seed.Enabled {
		return nil
	}

	if err := stores.Customers.Seed(ctx, demoCustomers()); err != nil {
		return errors.Wrap(err, "seed customers")
	}
	if err := stores.Inventory.Seed(ctx, demoInventory()); err != nil {
		return errors.Wrap(err, "seed inventory")
	}
	if err := stores.Vouchers.Seed(ctx, demoVouchers()); err != nil {
		return errors.Wrap(err, "seed vouchers")
	}

	logger.Info("Demo data seeded")

	return nil
}

func demoCustomers() []*entity.Customer {
	createdAt := time.Date(2024, time.June, 3, 8, 30, 0, 0, time.UTC)

	return []*entity.Customer{
		{
			ID:        "cust-an",
			Name:      "Nguyen Van An",
			Phone:     "0901234567",
			Email:     "an.nguyen@example.com",
			Address:   "23 Tran Hung Dao, Quan 1",
			Status:    entity.CustomerActive,
			CreatedAt: createdAt,
		},
		{
			ID:        "cust-binh",
			Name:      "Tran Thi Binh",
			Phone:     "0912345678",
			Address:   "8 Hai Ba Trung, Quan 3",
			Status:    entity.CustomerActive,
			CreatedAt: createdAt,
		},
		{
			ID:        "cust-cuong",
			Name:      "Le Van Cuong",
			Phone:     "0923456789",
			Status:    entity.CustomerInactive,
			CreatedAt: createdAt,
		},
	}
}

func demoInventory() []*entity.InventoryItem {
	createdAt := time.Date(2024, time.June, 3, 8, 30, 0, 0, time.UTC)

	return []*entity.InventoryItem{
		{
			ID:          "item-gao",
			ProductCode: "GAO-ST25",
			Barcode:     "8936012340011",
			Name:        "Gao ST25 5kg",
			Unit:        "bag",
			Price:       185000,
			Stock:       40,
			MinStock:    10,
			CreatedAt:   createdAt,
		},
		{
			ID:          "item-nuocmam",
			ProductCode: "NM-PQ500",
			Barcode:     "8936012340028",
			Name:        "Nuoc Mam Phu Quoc 500ml",
			Unit:        "bottle",
			Price:       62000,
			Stock:       25,
			MinStock:    5,
			CreatedAt:   createdAt,
		},
		{
			ID:          "item-cafe",
			ProductCode: "CF-BMT250",
			Barcode:     "8936012340035",
			Name:        "Ca Phe Buon Ma Thuot 250g",
			Unit:        "pack",
			Price:       78000,
			Stock:       4,
			MinStock:    6,
			CreatedAt:   createdAt,
		},
	}
}

func demoVouchers() []*entity.Voucher {
	createdAt := time.Date(2024, time.June, 3, 8, 30, 0, 0, time.UTC)

	return []*entity.Voucher{
		{
			ID:            "vchr-tet",
			Code:          "TET2025",
			CustomerPhone: "0901234567",
			Discount:      50000,
			Status:        entity.VoucherActive,
			ExpiryDate:    createdAt.AddDate(1, 0, 0),
			CreatedAt:     createdAt,
		},
		{
			ID:            "vchr-old",
			Code:          "HE2024",
			CustomerPhone: "0912345678",
			Discount:      20000,
			Status:        entity.VoucherActive,
			ExpiryDate:    createdAt.AddDate(0, 1, 0),
			CreatedAt:     createdAt,
		},
	}
}
