package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starlog-service/internal/config"
	"starlog-service/internal/database"
	"starlog-service/internal/github"
	"starlog-service/internal/handler"
	"starlog-service/internal/repository"
	"starlog-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN is empty, upstream fetches will fail with AUTH_REQUIRED")
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// GitHub клиент: REST + GraphQL, общий лимитер
	fetcher := github.NewClient(cfg, logger)

	// Репозитории
	userRepo := repository.NewUserRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// Use Cases
	yearLogUC := usecase.NewYearLogUseCase(fetcher, userRepo, statsRepo, achievementRepo)
	achievementUC := usecase.NewAchievementUseCase(achievementRepo)
	clearanceUC := usecase.NewClearanceUseCase(userRepo, statsRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(yearLogUC, achievementUC, clearanceUC, logger)
	handler.RegisterRoutes(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
