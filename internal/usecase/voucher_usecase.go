package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// VoucherUsecase defines voucher lifecycle operations. Expiry is a
// derived view: a voucher past its date still reads "active" from
// storage and is reclassified on every query, never rewritten.
type VoucherUsecase interface {
	List(ctx context.Context) []*entity.Voucher
	Get(ctx context.Context, id string) (*entity.Voucher, error)
	Create(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error)
	Delete(ctx context.Context, id string) error

	ByCode(ctx context.Context, code string) (*entity.Voucher, error)
	ByCustomerPhone(ctx context.Context, phone string) []*entity.Voucher

	// Use transitions an active, unexpired voucher to used and stamps
	// usedAt.
	Use(ctx context.Context, id string) (*entity.Voucher, error)

	// Cancel transitions an active voucher to cancelled and stamps
	// cancelledAt.
	Cancel(ctx context.Context, id string) (*entity.Voucher, error)

	// Expired returns vouchers that are active in storage but past
	// their expiry date.
	Expired(ctx context.Context) []*entity.Voucher

	// QR renders the voucher code as a PNG image.
	QR(ctx context.Context, id string) ([]byte, error)
}
