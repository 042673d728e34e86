package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depotlog-service/internal/infrastructure/config"
	"depotlog-service/internal/infrastructure/persistence"
	mongoRepo "depotlog-service/internal/interface/repository"
	"depotlog-service/internal/interface/rest"
	"depotlog-service/internal/usecase"
	"depotlog-service/pkg/logger"
	"depotlog-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Depot Waybill Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone", "timezone", cfg.Timezone, "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up Redis-backed session store
	redisClient := persistence.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)

	// Set up metrics
	m := metrics.NewMetrics("depotlog")

	// Set up repositories
	waybillRepo := mongoRepo.NewMongoWaybillRepository(db)
	busRepo := mongoRepo.NewMongoBusRepository(db)
	crewRepo := mongoRepo.NewMongoCrewRepository(db)
	depotRepo := mongoRepo.NewMongoDepotRepository(db)
	placeRepo := mongoRepo.NewMongoPlaceRepository(db)
	sessionRepo := mongoRepo.NewRedisSessionRepository(redisClient, cfg.SessionTTL)

	// Set up usecases
	auth := usecase.NewAuthenticator(depotRepo, sessionRepo, log, m)
	ingest := usecase.NewWaybillIngest(waybillRepo, busRepo, crewRepo, log, m)
	reports := usecase.NewDepotReports(waybillRepo, loc, log, m)
	directory := usecase.NewDirectory(busRepo, placeRepo, crewRepo)

	pingStore := func(ctx context.Context) error {
		return mongoClient.Ping(ctx, nil)
	}

	server := rest.NewServer(auth, ingest, reports, directory, pingStore, log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Routes(cfg.CORSOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Redis close error", "error", err)
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Depot Waybill Service stopped")
}
