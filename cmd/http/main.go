package main

import (
	"context"
	"fmt"
	"log"
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/controllers"
	"medora-portal/internal/app/delivery/http/middlewares"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/delivery/http/routers"
	"medora-portal/internal/app/drivers/database"
	"medora-portal/internal/app/drivers/logger"
	"medora-portal/internal/app/services/core/pages"
	"medora-portal/internal/app/services/core/portal"
	"medora-portal/internal/app/services/shared/medoraapi"
	"medora-portal/internal/app/services/shared/storage"
	"medora-portal/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Set at build time with -ldflags "-X main.Version=... -X main.Tag=...".
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting medora portal",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Only the configured storage driver gets a connection.
	switch internalConfig.Portal.StorageDriver {
	case constvars.StorageDriverRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	case constvars.StorageDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error while bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	portalConfig := internalConfig.Portal

	// Client storage
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	clientStorage, err := storage.NewClientStorage(ctx, storage.Options{
		Driver:      portalConfig.StorageDriver,
		TTL:         time.Duration(portalConfig.StorageTTLInHours) * time.Hour,
		Redis:       bootstrap.Redis,
		MongoDB:     bootstrap.MongoDB,
		MongoDBName: bootstrap.DriverConfig.MongoDB.DbName,
	}, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Medora backend
	medoraClient := medoraapi.NewMedoraClient(internalConfig, bootstrap.Logger)
	pageService := pages.NewPageService(medoraClient, bootstrap.Logger)

	// Portals
	registry, err := portal.NewRegistry(
		portalConfig.RegistrySize,
		time.Duration(portalConfig.RegistryIdleInMinutes)*time.Minute,
		func(clientID string) *portal.Portal {
			return portal.New(clientID, portal.Dependencies{
				MedoraClient: medoraClient,
				Storage:      clientStorage,
				Pages:        pageService,
				Log:          bootstrap.Logger,
			})
		},
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	bootstrap.PortalsStop = registry.Close

	// Views
	rd, err := renderer.NewRenderer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, routers.Controllers{
		Page:    controllers.NewPageController(bootstrap.Logger, registry, rd, internalConfig),
		Auth:    controllers.NewAuthController(bootstrap.Logger, registry, rd, internalConfig),
		Profile: controllers.NewProfileController(bootstrap.Logger, registry, rd, internalConfig),
		Patient: controllers.NewPatientController(bootstrap.Logger, registry, rd, internalConfig),
		User:    controllers.NewUserController(bootstrap.Logger, registry, rd, internalConfig),
		Health:  controllers.NewHealthController(registry),
	})
	return nil
}
