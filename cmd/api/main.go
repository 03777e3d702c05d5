package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lottolabs/lottologic-backend/api/routes"
	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/handlers"
	"github.com/lottolabs/lottologic-backend/internal/logger"
	"github.com/lottolabs/lottologic-backend/internal/repositories"
	mongorepo "github.com/lottolabs/lottologic-backend/internal/repositories/mongodb"
	"github.com/lottolabs/lottologic-backend/internal/scheduler"
	"github.com/lottolabs/lottologic-backend/internal/services"
	"github.com/lottolabs/lottologic-backend/pkg/dhlottery"
	"github.com/lottolabs/lottologic-backend/pkg/mongodb"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel)

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var drawRepo repositories.DrawRepository = mongorepo.NewDrawRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Services
	lottoClient := dhlottery.NewClient(cfg.Lotto.BaseURL, cfg.Lotto.MockAPI)
	historyService := services.NewHistoryService(drawRepo, lottoClient, cfg.Lotto)
	analysisService := services.NewAnalysisService(historyService)
	generatorService := services.NewGeneratorService(analysisService, cfg.Generator)
	authService := services.NewAuthService(adminRepo, cfg)

	// Startup refresh is best effort; stale weights beat no service
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	if stored, err := historyService.Refresh(startupCtx); err != nil {
		slog.Warn("Startup draw refresh failed", "error", err)
	} else if stored > 0 {
		slog.Info("Startup draw refresh complete", "newDraws", stored)
	}
	if err := analysisService.Recalibrate(startupCtx); err != nil {
		slog.Warn("Startup recalibration failed", "error", err)
	}
	if err := authService.EnsureDefaultAdmin(startupCtx); err != nil {
		slog.Warn("Failed to seed default admin", "error", err)
	}
	cancelStartup()

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		DrawHandler:     handlers.NewDrawHandler(historyService, analysisService),
		GenerateHandler: handlers.NewGenerateHandler(generatorService),
		StatsHandler:    handlers.NewStatsHandler(analysisService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	// Scheduled refresh
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(historyService, analysisService)
		if err := sched.Register(cfg.Scheduler.RefreshCron); err != nil {
			log.Fatalf("Failed to register refresh schedule: %v", err)
		}
		sched.Start()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}
