package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/alquilerapp/rent-service/internal/fx"
	"github.com/alquilerapp/rent-service/internal/handler"
	"github.com/alquilerapp/rent-service/internal/integrations/dolar"
	"github.com/alquilerapp/rent-service/internal/integrations/gemini"
	"github.com/alquilerapp/rent-service/internal/integrations/ipc"
	"github.com/alquilerapp/rent-service/internal/middleware"
	"github.com/alquilerapp/rent-service/internal/repository"
	"github.com/alquilerapp/rent-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// A local .env is optional; real deployments use the environment.
	godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize provider clients
	ipcClient := ipc.NewClient(cfg, logger)
	evolution := dolar.NewEvolutionClient(cfg, logger)
	history := dolar.NewHistoryClient(cfg, logger)
	dateClient := dolar.NewDateClient(cfg, logger)
	currentClient := dolar.NewCurrentClient(cfg, logger)
	genClient := gemini.NewClient(cfg, logger)

	// Initialize caches and resolver chain
	indexRepo := repository.NewIndexRepository(ipcClient, logger)
	fxRepo := repository.NewFxRepository(logger, evolution, history)
	resolver := fx.NewResolver(logger,
		fx.NewHistoryStrategy(fxRepo),
		fx.NewDateStrategy(dateClient, logger),
		fx.NewCurrentStrategy(currentClient, logger),
	)

	// Initialize layers
	svc := service.NewService(indexRepo, fxRepo, resolver, logger)
	h := handler.NewHandler(svc, genClient, logger)

	// Daily cache refresh: the index gains a month when published and the
	// FX history gains a day per trading day.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := indexRepo.Refresh(ctx); err != nil {
			logger.Warnf("Scheduled IPC refresh failed: %v", err)
		}
		fxRepo.Refresh(ctx)
	}); err != nil {
		logger.Fatalf("Invalid refresh schedule %q: %v", cfg.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.HandleFunc("/api/calculate", h.Calculate).Methods("POST")
	r.HandleFunc("/api/ipc", h.IndexSeries).Methods("GET")
	r.HandleFunc("/api/describe", h.Describe).Methods("POST")
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
