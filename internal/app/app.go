package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/camera"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/handlers"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/ternarybob/gymscout/internal/selection"
	"github.com/ternarybob/gymscout/internal/services/catalog"
	"github.com/ternarybob/gymscout/internal/services/gyms"
	"github.com/ternarybob/gymscout/internal/services/overpass"
	"github.com/ternarybob/gymscout/internal/services/scheduler"
	"github.com/ternarybob/gymscout/internal/services/session"
	"github.com/ternarybob/gymscout/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Domain services
	CatalogService   interfaces.CatalogService
	DiscoveryService interfaces.DiscoveryService
	GymService       interfaces.GymService
	SessionService   interfaces.SessionService
	SchedulerService *scheduler.Service

	// Selection machine and camera
	SelectionManager *selection.Manager
	CameraController *camera.Controller

	// HTTP handlers
	APIHandler       *handlers.APIHandler
	GymsHandler      *handlers.GymsHandler
	SelectionHandler *handlers.SelectionHandler
	ScoutHandler     *handlers.ScoutHandler
	SessionHandler   *handlers.SessionHandler
	WSHandler        *handlers.WebSocketHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	// Initial load runs in the background so startup is not blocked on the
	// network; the UI receives gyms_updated when it completes.
	common.SafeGo(logger, "initial-gym-load", func() {
		if err := app.GymService.Load(context.Background(), app.mapCenter()); err != nil {
			logger.Error().Err(err).Msg("Initial gym load failed")
		}
	})

	if cfg.Scheduler.Enabled {
		err := app.SchedulerService.Start(cfg.Scheduler.RefreshSchedule, func() {
			if err := app.GymService.Load(context.Background(), app.mapCenter()); err != nil {
				logger.Warn().Err(err).Msg("Scheduled gym refresh failed")
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start refresh scheduler: %w", err)
		}
	}

	logger.Info().
		Bool("scheduler_enabled", cfg.Scheduler.Enabled).
		Msg("Application initialization complete")

	return app, nil
}

// initStorage initializes the storage layer (Badger)
func (a *App) initStorage() error {
	storageManager, err := badger.NewManager(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	a.StorageManager = storageManager
	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")

	return nil
}

// initServices initializes all business services in dependency order.
func (a *App) initServices() error {
	// WebSocket handler first: it is the map surface and the event sink for
	// every service below.
	a.WSHandler = handlers.NewWebSocketHandler(a.Logger, &a.Config.WebSocket)

	a.CameraController = camera.NewController(a.WSHandler, a.Logger)

	a.CatalogService = catalog.NewService(&a.Config.Catalog, a.Logger)
	a.Logger.Debug().Str("base_url", a.Config.Catalog.BaseURL).Msg("Catalog service initialized")

	a.DiscoveryService = overpass.NewService(&a.Config.Overpass, a.Logger)
	a.Logger.Debug().Str("endpoint", a.Config.Overpass.Endpoint).Msg("Discovery service initialized")

	a.GymService = gyms.NewService(
		a.CatalogService,
		a.DiscoveryService,
		a.Config.Overpass.RadiusMeters,
		a.Logger,
		a.WSHandler.BroadcastGymsUpdated,
	)

	sessionService, err := session.NewService(a.StorageManager.SessionStorage(), a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session service: %w", err)
	}
	a.SessionService = sessionService

	rules := selection.Rules{
		FlyToZoom:           a.Config.Selection.FlyToZoom,
		FlyToDurationMs:     a.Config.Selection.FlyToDurationMs,
		SheetCloseThreshold: a.Config.Selection.SheetCloseThreshold,
		SheetOpenThreshold:  a.Config.Selection.SheetOpenThreshold,
	}
	a.SelectionManager = selection.NewManager(rules, a.Logger, a.dispatchCommand, a.WSHandler.BroadcastSelectionChanged)
	a.Logger.Debug().Msg("Selection manager initialized")

	a.SchedulerService = scheduler.NewService(a.Logger)

	return nil
}

// initHandlers initializes all HTTP handlers
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.GymsHandler = handlers.NewGymsHandler(a.GymService, a.mapCenter(), a.Logger)
	a.SelectionHandler = handlers.NewSelectionHandler(a.SelectionManager, a.GymService, a.SessionService, a.Logger)
	a.ScoutHandler = handlers.NewScoutHandler(a.SelectionManager, a.CatalogService, a.GymService, a.SessionService, a.Logger)
	a.SessionHandler = handlers.NewSessionHandler(a.SessionService, a.Logger)
}

// dispatchCommand routes selection commands to their effect executors.
func (a *App) dispatchCommand(cmd selection.Command) {
	switch c := cmd.(type) {
	case selection.FlyToCommand:
		a.CameraController.FlyTo(c.Coordinate, c.Zoom, c.DurationMs)
	default:
		a.Logger.Warn().Str("command", fmt.Sprintf("%T", cmd)).Msg("Unhandled selection command")
	}
}

func (a *App) mapCenter() models.Coordinate {
	return models.Coordinate{
		Longitude: a.Config.Map.CenterLongitude,
		Latitude:  a.Config.Map.CenterLatitude,
	}
}

// Close closes all application resources
func (a *App) Close() error {
	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}

	// Mark the gym service torn down so in-flight loads discard their results
	if a.GymService != nil {
		a.GymService.Close()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}
