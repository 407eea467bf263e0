package main

import (
	"context"
	"log/slog"
	"os"

	"ecomarket/config"
	"ecomarket/internal/delivery"
	"ecomarket/internal/delivery/http"
	"ecomarket/internal/delivery/http/router/handler"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/infra/auth"
	logs "ecomarket/internal/infra/log"
	blobstore "ecomarket/internal/infra/persistence/blob"
	filestore "ecomarket/internal/infra/persistence/file"
	"ecomarket/internal/usecase/impl"

	"github.com/pkg/errors"
	gcblob "gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
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
		injectStore(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		auth.NewBcryptHasher,
	)
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			newDocumentStore,
			repository.NewDocumentLock,
		),
	)
}

// newDocumentStore picks the store backend from config: a plain JSON file on
// local disk, or an object in a gocloud.dev bucket.
func newDocumentStore(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.DocumentStore, error) {
	switch cfg.Storage.Driver {
	case "file", "":
		return filestore.New(cfg.Storage.Path, logger), nil
	case "blob":
		bucket, err := gcblob.OpenBucket(ctx, cfg.Storage.Blob.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.Blob.URL)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bucket.Close()
			},
		})

		return blobstore.New(bucket, cfg.Storage.Blob.Key, logger), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSellerService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewLoyaltyService,
			impl.NewEnvironmentalService,
			impl.NewPayoutService,
			impl.NewAdminService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSellerHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPayoutHandler,
			handler.NewAdminHandler,
			handler.NewLoyaltyHandler,
			handler.NewEnvironmentalHandler,
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
