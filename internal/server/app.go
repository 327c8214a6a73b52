// Package server wires configuration, storage, services and the gRPC
// transport into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/citylifes/internal/convcrypto"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/geocoding"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/config"
	"github.com/dmitrijs2005/citylifes/internal/server/events"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/citylifes/internal/server/services"

	gs "github.com/dmitrijs2005/citylifes/internal/server/grpc"
)

// Seams for tests.
var (
	openDB         = repomanager.OpenDB
	newRepoManager = func() repomanager.RepositoryManager { return repomanager.NewPostgresRepositoryManager() }
	connectEvents  = func(url, prefix string, log logging.Logger) (eventsPublisher, error) {
		return events.Connect(url, prefix, log)
	}
)

// eventsPublisher is a publisher that owns a connection.
type eventsPublisher interface {
	events.Publisher
	Close()
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	publisher eventsPublisher
	services  gs.Services
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogFormat, os.Stdout)

	ordering, err := geo.ParseOrdering(c.SponsoredOrdering)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}
	app.publisher = app.initEvents(ctx)
	app.services = app.buildServices(rm, ordering)

	return app, nil
}

// initEvents connects to NATS when configured. Without a broker the app
// still runs; clients then fall back to polling.
func (app *App) initEvents(ctx context.Context) eventsPublisher {
	if app.config.NATSURL == "" {
		return nopPublisher{}
	}
	p, err := connectEvents(app.config.NATSURL, app.config.EventSubjectPrefix, app.logger)
	if err != nil {
		app.logger.Warn(ctx, "realtime events disabled", "error", err)
		return nopPublisher{}
	}
	return p
}

type nopPublisher struct{ events.NopPublisher }

func (nopPublisher) Close() {}

func (app *App) buildServices(rm repomanager.RepositoryManager, ordering geo.Ordering) gs.Services {
	c := app.config
	httpClient := &http.Client{}

	var opts []convcrypto.Option
	if c.LegacyMessageKeys {
		opts = append(opts, convcrypto.WithLegacyKeys())
	}

	providers := []geocoding.Provider{geocoding.NewNominatim(c.NominatimURL, httpClient)}
	if google, err := geocoding.NewGoogle(c.GoogleMapsURL, c.GoogleMapsAPIKey, httpClient); err == nil {
		providers = append(providers, google)
	}
	resolver := geocoding.NewResolver(
		geo.NewGeocodeCache(c.GeocodeCacheSize, c.GeocodeCacheTTL),
		c.GeocodeTimeout, app.logger, providers...)

	admin := services.NewAdminService(app.db, rm, app.logger)

	return gs.Services{
		Messages:  services.NewMessageService(app.db, rm, convcrypto.New(opts...), app.publisher, app.logger),
		Campaigns: services.NewCampaignService(app.db, rm, admin, ordering, app.logger),
		Location:  services.NewLocationService(app.db, rm, resolver, app.logger),
		Admin:     admin,
		Media:     services.NewMediaService(app.db, rm, c),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database and broker connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.Close()
	app.logger.Info(context.Background(), "App stopped")
}

// Close releases the app's connections.
func (app *App) Close() {
	app.publisher.Close()
	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
}
