package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/tui"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/workers"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// StatusUI is the interactive front end driven by [App].
type StatusUI interface {
	Run(ctx context.Context, tenant string) error
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	ui       StatusUI
	tenant   string
	headless bool

	closers []func() error
	logger  *logger.Logger
}

// NewApp opens the local store, connects the remote adapter and wires the
// sync engine for the tenant named by the configured token. An empty token
// leaves the app without a tenant; the bootstrap then reports NO_USER.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	tenant := ""
	if cfg.App.Token != "" {
		var err error
		tenant, err = utils.ParseTenantFromJWT(cfg.App.Token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	closers := []func() error{storages.LocalStore.Close}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, log)
	if err != nil {
		closeAll(closers, log)
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}
	remote.SetToken(cfg.App.Token)

	prober := adapter.NewHTTPProber(remote)
	if cfg.Adapter.GRPCAddress != "" {
		grpcProber, err := adapter.NewGRPCProber(cfg.Adapter.GRPCAddress)
		if err != nil {
			closeAll(closers, log)
			return nil, fmt.Errorf("create grpc prober: %w", err)
		}
		prober = grpcProber
		closers = append(closers, grpcProber.Close)
	}

	services := service.NewClientServices(storages.LocalStore, remote, prober, cfg.Sync, log)
	services.EntityService.SetTenant(tenant)

	app := newApp(services, tui.New(services, buildInfo, log), tenant, cfg.App.Headless, log)
	app.workers = workers.NewWorkers(workers.NewProbeWorker(services.ProbeJob, cfg.Sync.ProbeInterval))
	app.closers = closers
	return app, nil
}

func newApp(services *service.ClientServices, ui StatusUI, tenant string, headless bool, log *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers.NewWorkers(),
		ui:       ui,
		tenant:   tenant,
		headless: headless,
		logger:   log,
	}
}

// Run starts the background workers and either hands the terminal to the
// status UI or, in headless mode, runs the bootstrap once and returns.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.shutdown()

	if a.headless {
		return a.runHeadless(ctx)
	}

	err := a.ui.Run(ctx, a.tenant)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) runHeadless(ctx context.Context) error {
	result := a.services.SyncService.InitializeSync(ctx, a.tenant)

	event := a.logger.Info()
	if result.Err != nil {
		event = a.logger.Error().Err(result.Err)
	}
	event.
		Str("func", "App.runHeadless").
		Str("scenario", string(result.Status)).
		Int("records", result.Data.Count()).
		Msg("bootstrap sync finished")

	if result.Status == models.ScenarioError {
		return fmt.Errorf("%w: %w", ErrBootstrapFailed, result.Err)
	}
	return nil
}

func (a *App) shutdown() {
	a.workers.Stop()
	a.services.Close()
	closeAll(a.closers, a.logger)
}

func closeAll(closers []func() error, log *logger.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			log.Err(err).Str("func", "client.closeAll").Msg("error releasing client resource")
		}
	}
}
