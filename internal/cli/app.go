package cli

import (
	"context"
	"fmt"
	"io"

	"game-marketplace/internal/client"
	"game-marketplace/internal/config"
	"game-marketplace/internal/repository"
	"game-marketplace/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// App is one running storefront: a seeded catalog plus the session of the
// person at the keyboard. Every command of a shell session shares it.
type App struct {
	Catalog service.CatalogService
	Session service.SessionService

	log     *zap.SugaredLogger
	closers []func() error
}

func NewApp(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, out io.Writer) (*App, error) {
	feeRate, err := decimal.NewFromString(cfg.Checkout.ServiceFeeRate)
	if err != nil {
		return nil, fmt.Errorf("parse service fee rate %q: %w", cfg.Checkout.ServiceFeeRate, err)
	}

	app := &App{log: log}

	storage, err := app.openStorage(ctx, &cfg.Storage)
	if err != nil {
		return nil, err
	}

	catalog := service.NewCatalogService(
		repository.NewGameRepository(),
		repository.NewOrderRepository(nil),
		repository.NewUserRepository(),
		service.NewLatency(cfg.Latency.Scale),
		log,
	)
	if err := catalog.Seed(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	app.Catalog = catalog
	app.Session = service.NewSessionService(ctx, catalog, storage, newPrintNotifier(out), feeRate, log)

	return app, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Storage) (repository.StorageRepository, error) {
	switch cfg.Driver {
	case "none", "":
		return nil, nil
	case "redis":
		rdb, err := client.InitRedisClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		return repository.NewRedisStorageRepository(rdb, cfg.KeyPrefix), nil
	default:
		db, err := client.InitStorageDB(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqlDB.Close)
		return repository.NewStorageRepository(db), nil
	}
}

func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.log.Warnw("close storage", "error", err)
		}
	}
	a.closers = nil
}

type printNotifier struct {
	out io.Writer
}

func newPrintNotifier(out io.Writer) service.Notifier {
	return &printNotifier{out: out}
}

func (n *printNotifier) Notify(msg service.Notification) {
	fmt.Fprintf(n.out, "[%s] %s\n", msg.Level, msg.Message)
}
