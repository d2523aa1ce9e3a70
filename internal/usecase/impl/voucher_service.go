package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "salepoint/internal/delivery/context"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/usecase"

	"github.com/pkg/errors"
)

// voucherService implements the VoucherUsecase interface.
type voucherService struct {
	store  repository.RecordStore[*entity.Voucher]
	qr     service.QRCodeService
	logger *slog.Logger
	now    func() time.Time
}

// NewVoucherService is the constructor for voucherService.
func NewVoucherService(
	store repository.RecordStore[*entity.Voucher],
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.VoucherUsecase {
	return &voucherService{
		store:  store,
		qr:     qr,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *voucherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every voucher in storage order.
func (srv *voucherService) List(ctx context.Context) []*entity.Voucher {
	return srv.store.All(ctx)
}

// Get retrieves a voucher by id.
func (srv *voucherService) Get(ctx context.Context, id string) (*entity.Voucher, error) {
	voucher, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrVoucherNotFound
	}

	return voucher, nil
}

// Create persists a new voucher, active by default.
func (srv *voucherService) Create(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error) {
	if voucher.Status == "" {
		voucher.Status = entity.VoucherActive
	}
	if voucher.CreatedAt.IsZero() {
		voucher.CreatedAt = srv.now()
	}

	created, err := srv.store.Create(ctx, voucher)
	if err != nil {
		srv.log(ctx).Error("Failed to create voucher", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create voucher")
	}
	srv.log(ctx).Info("Voucher created", slog.String("voucher_id", created.ID), slog.String("code", created.Code))

	return created, nil
}

// Delete removes a voucher.
func (srv *voucherService) Delete(ctx context.Context, id string) error {
	removed, err := srv.store.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete voucher")
	}
	if !removed {
		return domainerrors.ErrVoucherNotFound
	}

	return nil
}

// ByCode finds the voucher with the exact code.
func (srv *voucherService) ByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	for _, voucher := range srv.store.All(ctx) {
		if voucher.Code == code {
			return voucher, nil
		}
	}

	return nil, domainerrors.ErrVoucherNotFound
}

// ByCustomerPhone returns every voucher issued to the given phone.
func (srv *voucherService) ByCustomerPhone(ctx context.Context, phone string) []*entity.Voucher {
	vouchers := make([]*entity.Voucher, 0)
	for _, voucher := range srv.store.All(ctx) {
		if voucher.CustomerPhone == phone {
			vouchers = append(vouchers, voucher)
		}
	}

	return vouchers
}

// Use transitions an active, unexpired voucher to used. An expired
// one is refused even though storage still says "active".
func (srv *voucherService) Use(ctx context.Context, id string) (*entity.Voucher, error) {
	voucher, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrVoucherNotFound
	}

	now := srv.now()
	if voucher.ExpiredAt(now) {
		return nil, domainerrors.ErrVoucherExpired
	}
	if voucher.Status != entity.VoucherActive {
		return nil, domainerrors.ErrVoucherNotActive
	}

	updated, _, err := srv.store.Update(ctx, id, map[string]any{
		"status": entity.VoucherUsed,
		"usedAt": now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to use voucher")
	}
	srv.log(ctx).Info("Voucher used", slog.String("voucher_id", id), slog.String("code", voucher.Code))

	return updated, nil
}

// Cancel transitions an active voucher to cancelled.
func (srv *voucherService) Cancel(ctx context.Context, id string) (*entity.Voucher, error) {
	voucher, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrVoucherNotFound
	}
	if voucher.Status != entity.VoucherActive {
		return nil, domainerrors.ErrVoucherNotActive
	}

	updated, _, err := srv.store.Update(ctx, id, map[string]any{
		"status":      entity.VoucherCancelled,
		"cancelledAt": srv.now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel voucher")
	}
	srv.log(ctx).Info("Voucher cancelled", slog.String("voucher_id", id), slog.String("code", voucher.Code))

	return updated, nil
}

// Expired returns vouchers whose stored status is active but whose
// expiry date has passed. Staleness is recomputed on every read and
// never written back.
func (srv *voucherService) Expired(ctx context.Context) []*entity.Voucher {
	now := srv.now()
	expired := make([]*entity.Voucher, 0)
	for _, voucher := range srv.store.All(ctx) {
		if voucher.ExpiredAt(now) {
			expired = append(expired, voucher)
		}
	}

	return expired
}

// QR renders the voucher code as a PNG image.
func (srv *voucherService) QR(ctx context.Context, id string) ([]byte, error) {
	voucher, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrVoucherNotFound
	}

	png, err := srv.qr.GenerateVoucherQR(voucher.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render voucher QR")
	}

	return png, nil
}
