package main

import (
	"context"
	"log/slog"
	"os"

	"salepoint/config"
	"salepoint/internal/delivery"
	"salepoint/internal/delivery/http"
	"salepoint/internal/delivery/http/middleware"
	"salepoint/internal/delivery/http/router/handler"
	"salepoint/internal/domain/entity"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/infra/auth"
	"salepoint/internal/infra/bus"
	"salepoint/internal/infra/directory"
	"salepoint/internal/infra/kv"
	logs "salepoint/internal/infra/log"
	"salepoint/internal/infra/notify"
	"salepoint/internal/infra/persistence/record"
	"salepoint/internal/infra/qrcode"
	"salepoint/internal/seed"
	"salepoint/internal/usecase"
	"salepoint/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			runSeed,
			watchStorageChanges,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newChangePublisher,
			newCustomerStore,
			newInventoryStore,
			newSaleStore,
			newVoucherStore,
		),
	)
}

// newChangePublisher wires the in-process broadcaster as the change
// publisher every record store fires into.
func newChangePublisher(logger *slog.Logger) service.ChangePublisher {
	return bus.NewBroadcaster(logger)
}

func newCustomerStore(
	medium repository.KeyValue, events service.ChangePublisher, logger *slog.Logger,
) repository.RecordStore[*entity.Customer] {
	return record.NewStore[*entity.Customer](repository.KeyCustomers, medium, events, logger)
}

func newInventoryStore(
	medium repository.KeyValue, events service.ChangePublisher, logger *slog.Logger,
) repository.RecordStore[*entity.InventoryItem] {
	return record.NewStore[*entity.InventoryItem](repository.KeyInventory, medium, events, logger)
}

func newSaleStore(
	medium repository.KeyValue, events service.ChangePublisher, logger *slog.Logger,
) repository.RecordStore[*entity.Sale] {
	return record.NewStore[*entity.Sale](repository.KeySales, medium, events, logger)
}

func newVoucherStore(
	medium repository.KeyValue, events service.ChangePublisher, logger *slog.Logger,
) repository.RecordStore[*entity.Voucher] {
	return record.NewStore[*entity.Voucher](repository.KeyVouchers, medium, events, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenService,
			notify.NewSlogNotifier,
			directory.NewStaticDirectory,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewInventoryService,
			impl.NewSalesService,
			impl.NewVoucherService,
			impl.NewSessionGuard,
			newSessionService,
			impl.NewWorkspaceService,
		),
	)
}

// newSessionService threads the configured session timeout into the
// session usecase.
func newSessionService(
	medium repository.KeyValue,
	tokens service.TokenService,
	guard usecase.GuardUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return impl.NewSessionService(medium, tokens, guard, cfg.Session.Timeout, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewInventoryHandler,
			handler.NewSalesHandler,
			handler.NewVoucherHandler,
			handler.NewSessionHandler,
			handler.NewWorkspaceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type seedParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Customers repository.RecordStore[*entity.Customer]
	Inventory repository.RecordStore[*entity.InventoryItem]
	Vouchers  repository.RecordStore[*entity.Voucher]
}

func runSeed(ctx context.Context, params seedParams) error {
	return seed.Run(ctx, params.Config, params.Logger, seed.Stores{
		Customers: params.Customers,
		Inventory: params.Inventory,
		Vouchers:  params.Vouchers,
	})
}

// watchStorageChanges logs collection changes; a UI layer would hang
// its refresh listeners on the same subscription.
func watchStorageChanges(events service.ChangePublisher, logger *slog.Logger) {
	events.Subscribe(func(key string) {
		logger.Debug("Collection changed", slog.String("key", key))
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
