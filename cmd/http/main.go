package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"reserv-service/internal/app/config"
	"reserv-service/internal/app/delivery/http/controllers"
	"reserv-service/internal/app/delivery/http/middlewares"
	"reserv-service/internal/app/delivery/http/routers"
	"reserv-service/internal/app/drivers/database"
	"reserv-service/internal/app/drivers/logger"
	"reserv-service/internal/app/services/core/reservations"
	"reserv-service/internal/app/services/shared/locker"
	redisRepo "reserv-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	startupLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.Reservation.Timezone)
	if err != nil {
		startupLog.Fatalf("Error loading reference timezone: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, startupLog)
	redisClient := database.NewRedisClient(driverConfig, startupLog)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		StartupLogger:  startupLog,
		Location:       location,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			startupLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	startupLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	startupLog.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		startupLog.Fatalf("Server forced to shutdown: %v", err)
	}

	startupLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Reservations
	reservationRepository := reservations.NewReservationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	if err := reservationRepository.EnsureIndexes(context.Background()); err != nil {
		bootstrap.StartupLogger.Fatalf("Failed to ensure reservation indexes: %v", err)
	}
	reservationUsecase := reservations.NewReservationUsecase(
		reservationRepository,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Location,
		bootstrap.Logger,
	)
	reservationController := controllers.NewReservationController(bootstrap.Logger, reservationUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, reservationController)
}
