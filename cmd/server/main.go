package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	handler "github.com/courseboard/api/internal/adapters/handler/http"
	repo "github.com/courseboard/api/internal/adapters/repository/postgres"
	"github.com/courseboard/api/internal/config"
	"github.com/courseboard/api/internal/core/services"
	"github.com/courseboard/api/internal/database"
	"github.com/courseboard/api/internal/logger"
	"github.com/courseboard/api/internal/metrics"
)

func main() {
	_ = godotenv.Load()
	logger.SetupDefault(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal(err)
	}

	userRepo := repo.NewUserRepository(db)
	courseRepo := repo.NewCourseRepository(db)

	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, tokenSvc)
	userSvc := services.NewUserService(userRepo)
	courseSvc := services.NewCourseService(courseRepo)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	authHandler := handler.NewAuthHandler(authSvc, userSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	router := handler.NewHandler(
		authHandler,
		courseHandler,
		handler.NewAuthMiddleware(authSvc),
		metrics.Handler(registry),
		handler.NewMetricsMiddleware(collector),
	)

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.ServerPort, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
