package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicmap/civic-reports/internal/config"
	v1 "github.com/civicmap/civic-reports/internal/handler/http/v1"
	"github.com/civicmap/civic-reports/internal/llm"
	"github.com/civicmap/civic-reports/internal/metrics"
	"github.com/civicmap/civic-reports/internal/repository"
	"github.com/civicmap/civic-reports/internal/service"
	"github.com/civicmap/civic-reports/internal/votehistory"
	"github.com/civicmap/civic-reports/pkg/jsonfile"
	"github.com/civicmap/civic-reports/pkg/logger"
	redisclient "github.com/civicmap/civic-reports/pkg/redis"

	_ "github.com/civicmap/civic-reports/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Civic Reports API
// @version 1.0
// @description Civic reporting dashboard API: geo-tagged citizen reports, voting, analytics and government announcements.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// История голосов: Redis при наличии адреса, иначе in-memory
	var history votehistory.Store = votehistory.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		history = votehistory.NewRedisStore(redisClient)
	} else {
		log.Info("REDIS_ADDR is not set, vote history is kept in memory")
	}

	// Клиент внешнего генеративного API
	llmClient := llm.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, log)

	// Инициализация репозиториев
	store := jsonfile.NewStore()
	reportRepo := repository.NewReportRepository(store, cfg.DataDir)
	announcementRepo := repository.NewAnnouncementRepository(store, cfg.DataDir, cfg.PublicDir)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, history, log, cfg)
	analyticsService := service.NewAnalyticsService(reportRepo, llmClient, log, cfg)
	announcementService := service.NewAnnouncementService(announcementRepo, reportRepo, llmClient, log, cfg)
	mapService := service.NewMapService(reportRepo, log, cfg)

	// Метрики приложения
	appMetrics := metrics.New()

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, analyticsService, announcementService, mapService, log, cfg, appMetrics)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.RequestIDMiddleware())
	router.Use(appMetrics.GinMiddleware())

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Публичная раздача PDF анонсов
	router.Static("/announcements", cfg.PublicDir)

	// Метрики Prometheus
	router.GET("/metrics", appMetrics.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
