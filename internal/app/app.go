package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/chwpym/autoreturns/internal/config"
	backupv1 "github.com/chwpym/autoreturns/internal/transport/http/backup/v1"
	companyv1 "github.com/chwpym/autoreturns/internal/transport/http/company/v1"
	customerv1 "github.com/chwpym/autoreturns/internal/transport/http/customer/v1"
	"github.com/chwpym/autoreturns/internal/transport/http/health"
	partv1 "github.com/chwpym/autoreturns/internal/transport/http/part/v1"
	supplierv1 "github.com/chwpym/autoreturns/internal/transport/http/supplier/v1"
	transactionv1 "github.com/chwpym/autoreturns/internal/transport/http/transaction/v1"
	"github.com/chwpym/autoreturns/pkg/closer"
	"github.com/chwpym/autoreturns/pkg/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clientes", customerv1.NewCustomerHandler(a.di.CustomerService(ctx)).Routes)
		r.Route("/fornecedores", supplierv1.NewSupplierHandler(a.di.SupplierService(ctx)).Routes)
		r.Route("/pecas", partv1.NewPartHandler(a.di.PartService(ctx)).Routes)
		r.Route("/movimentacoes", transactionv1.NewTransactionHandler(a.di.TransactionService(ctx)).Routes)
		r.Route("/empresa", companyv1.NewCompanyHandler(a.di.CompanyService(ctx)).Routes)
		r.Route("/backup", backupv1.NewBackupHandler(a.di.BackupService(ctx)).Routes)
	})

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP Server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 autoreturns server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
