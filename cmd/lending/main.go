package main

import (
	"context"
	"log/slog"
	"os"

	"lending/config"
	"lending/internal/delivery"
	"lending/internal/delivery/api"
	"lending/internal/delivery/api/middleware"
	"lending/internal/delivery/api/router/handler"
	"lending/internal/domain/repository"
	"lending/internal/errors"
	"lending/internal/infra/auth"
	logs "lending/internal/infra/log"
	"lending/internal/infra/notification"
	"lending/internal/infra/persistence/memory"
	"lending/internal/infra/persistence/postgres"
	"lending/internal/infra/qrcode"
	"lending/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

// repositories is the store selected by storage.driver.
type repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	BookRepo  repository.BookRepository
	LoanRepo  repository.LoanRepository
}

func injectRepo() fx.Option {
	return fx.Provide(newRepositories)
}

func newRepositories(params postgres.Params) (repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using the in-memory store, data is lost on restart")
		store := memory.NewStore()

		return repositories{
			TxManager: memory.NewTransactionManager(store),
			UserRepo:  memory.NewUserRepository(store),
			BookRepo:  memory.NewBookRepository(store),
			LoanRepo:  memory.NewLoanRepository(store),
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(params)
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			TxManager: postgres.NewTransactionManager(db),
			UserRepo:  postgres.NewUserRepository(db),
			BookRepo:  postgres.NewBookRepository(db),
			LoanRepo:  postgres.NewLoanRepository(db),
		}, nil
	default:
		return repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewLoanService,
			impl.NewLoanAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewBookHandler,
			handler.NewLoanHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
