package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/config"
	"github.com/nomadbikers/ridetrack/internal/pkg/connectivity"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/health"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	nrpkg "github.com/nomadbikers/ridetrack/internal/pkg/newrelic"
	"github.com/nomadbikers/ridetrack/internal/pkg/prefs"
	"github.com/nomadbikers/ridetrack/internal/pkg/server"
	"github.com/nomadbikers/ridetrack/internal/pkg/storage"
	chatGateway "github.com/nomadbikers/ridetrack/services/chat/gateway"
	chatHandler "github.com/nomadbikers/ridetrack/services/chat/handler"
	chatRepository "github.com/nomadbikers/ridetrack/services/chat/repository"
	chatUsecase "github.com/nomadbikers/ridetrack/services/chat/usecase"
	profilesGateway "github.com/nomadbikers/ridetrack/services/profiles/gateway"
	profilesHandler "github.com/nomadbikers/ridetrack/services/profiles/handler"
	profilesRepository "github.com/nomadbikers/ridetrack/services/profiles/repository"
	profilesUsecase "github.com/nomadbikers/ridetrack/services/profiles/usecase"
	"github.com/nomadbikers/ridetrack/services/rides"
	ridesGateway "github.com/nomadbikers/ridetrack/services/rides/gateway"
	ridesHandler "github.com/nomadbikers/ridetrack/services/rides/handler"
	ridesRepository "github.com/nomadbikers/ridetrack/services/rides/repository"
	"github.com/nomadbikers/ridetrack/services/rides/sampler"
	ridesUsecase "github.com/nomadbikers/ridetrack/services/rides/usecase"
)

func main() {
	appName := "ridetrack"
	configs := config.InitConfig("config/ridetrack.env")

	// Initialize New Relic before the logger so log forwarding can attach
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Remote store and local cache
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Connectivity monitor: the remote store is reachable when Postgres
	// answers a ping. Every sync decision hangs off this one probe.
	monitor := connectivity.NewMonitor(
		connectivity.ProberFunc(func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		}),
		time.Duration(configs.Connectivity.ProbeIntervalMs)*time.Millisecond,
		time.Duration(configs.Connectivity.ProbeTimeoutMs)*time.Millisecond,
	)
	monitor.Start()
	defer monitor.Stop()

	assets, err := storage.NewDiskStore(configs.Assets)
	if err != nil {
		logger.Fatal("Failed to initialize asset store", logger.Err(err))
	}

	prefStore := prefs.NewStore(redisClient, prefs.ThemeLight)

	// Rides service
	rideRepo := ridesRepository.NewRideRepo(configs, postgresClient)
	rideCache := ridesRepository.NewRideCache(redisClient)
	rideGW := ridesGateway.NewRideGW(natsClient)
	rideUC := ridesUsecase.NewRideUC(configs, rideRepo, rideCache, redisClient, rideGW, natsClient, monitor)

	feed := sampler.NewFeed()
	session := ridesUsecase.NewSession(rideUC, feed, &configs.Tracking)

	// Chat service
	chatRepo := chatRepository.NewChatRepo(configs, postgresClient)
	chatGW := chatGateway.NewChatGW(natsClient)
	chatUC := chatUsecase.NewChatUC(configs, chatRepo, chatGW, assets, redisClient, natsClient, monitor)

	// Profiles service
	profileRepo := profilesRepository.NewProfileRepo(configs, postgresClient)
	profileGW := profilesGateway.NewProfileGW(natsClient)
	profileUC := profilesUsecase.NewProfileUC(configs, profileRepo, profileGW, assets, redisClient, natsClient, monitor)

	ridesH := ridesHandler.NewHandler(rideUC, session, feed, configs)
	chatH := chatHandler.NewHandler(chatUC, configs)
	profilesH := profilesHandler.NewHandler(profileUC, prefStore, natsClient, configs)

	if err := ridesH.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize rides NATS consumers", logger.Err(err))
	}
	defer ridesH.Stop()
	if err := chatH.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize chat NATS consumers", logger.Err(err))
	}
	defer chatH.Stop()
	if err := profilesH.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize profiles NATS consumers", logger.Err(err))
	}
	defer profilesH.Stop()

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware(configs, nrApp)
	e.Use(mw.PanicRecovery())
	e.Use(mw.RequestLogger())
	e.Use(mw.NewRelicTransaction())

	// Uploaded avatars and chat images are served straight off the bucket root
	e.Static(configs.Assets.BaseURL, configs.Assets.Root)

	healthHandler := health.NewHandler(map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
		"nats":     health.NewNATSHealthChecker(natsClient),
	})
	healthHandler.RegisterRoutes(e)

	ridesH.RegisterRoutes(e, mw)
	chatH.RegisterRoutes(e, mw)
	profilesH.RegisterRoutes(e, mw)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		if _, err := session.Stop(ctx); err != nil && err != rides.ErrNotRecording {
			return err
		}
		return nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdown.Shutdown(ctx)
}
