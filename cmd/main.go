package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	findAvailableLocationsHandler "github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers/find_available_locations"
	findBookingOptionsHandler "github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers/find_booking_options"
	getFreePeriodsHandler "github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers/get_free_periods"
	getSearchSettingsHandler "github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers/get_search_settings"
	updateSearchSettingsHandler "github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers/update_search_settings"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/config"
	settingsRepo "github.com/m04kA/SMC-VideoLinkBookingService/internal/infra/storage/settings"
	videoLinkRepo "github.com/m04kA/SMC-VideoLinkBookingService/internal/infra/storage/videolink"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
	settingsService "github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings"
	findAvailableLocationsUC "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_available_locations"
	findBookingOptionsUC "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_booking_options"
	getFreePeriodsUC "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/get_free_periods"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/metrics"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitClientIdle      = 10 * time.Minute
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VideoLinkBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	searchDefaults, err := cfg.Search.ToDomain()
	if err != nil {
		log.Fatal("Invalid search defaults: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")
	}
	videoLinkRepository := videoLinkRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Клиент системы расписаний.
	// Интерфейсы метрик получают nil только как нетипизированный nil, иначе проверка metrics != nil не сработает
	var (
		integrationMetrics schedulingservice.MetricsCollector
		searchMetrics      findBookingOptionsUC.MetricsCollector
	)
	if metricsCollector != nil {
		integrationMetrics = metricsCollector
		searchMetrics = metricsCollector
	}

	schedulingClient := schedulingservice.NewClient(
		cfg.SchedulingService.URL,
		time.Duration(cfg.SchedulingService.Timeout)*time.Second,
		cfg.SchedulingService.MaxConcurrency,
		log,
		integrationMetrics,
	)
	log.Info("Scheduling service client initialized (url=%s, timeout=%ds, max_concurrency=%d)",
		cfg.SchedulingService.URL, cfg.SchedulingService.Timeout, cfg.SchedulingService.MaxConcurrency)

	// Кэш комнат видеосвязи (Redis)
	var roomsProvider schedulingservice.RoomsProvider = schedulingClient
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will fall back to scheduling service: %v", cfg.Cache.Addr, err)
		}
		cancel()

		roomsProvider = schedulingservice.NewCachedRoomsClient(
			schedulingClient,
			schedulingservice.NewRedisCache(rdb),
			time.Duration(cfg.Cache.TTL)*time.Second,
			log,
		)
		log.Info("Rooms cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Сервисы
	settingsSvc := settingsService.NewService(settingsRepository, *searchDefaults, log)

	// Use cases
	findBookingOptionsUseCase := findBookingOptionsUC.NewUseCase(
		settingsSvc,
		videoLinkRepository,
		schedulingClient,
		searchMetrics,
		log,
	)
	findAvailableLocationsUseCase := findAvailableLocationsUC.NewUseCase(
		roomsProvider,
		videoLinkRepository,
		schedulingClient,
		log,
	)
	getFreePeriodsUseCase := getFreePeriodsUC.NewUseCase(schedulingClient, log)

	// Handlers
	findBookingOptions := findBookingOptionsHandler.NewHandler(findBookingOptionsUseCase, log)
	findAvailableLocations := findAvailableLocationsHandler.NewHandler(findAvailableLocationsUseCase, log)
	getFreePeriods := getFreePeriodsHandler.NewHandler(getFreePeriodsUseCase, log)
	getSearchSettings := getSearchSettingsHandler.NewHandler(settingsSvc, log)
	updateSearchSettings := updateSearchSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		go limiter.RunCleanup(rateLimitCleanupInterval, rateLimitClientIdle, stopCh)
		r.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные периоды комнаты за день
	api.HandleFunc("/agencies/{agencyId}/rooms/{roomId}/free-periods",
		getFreePeriods.Handle).Methods(http.MethodGet)

	// Настройки поиска учреждения
	api.HandleFunc("/agencies/{agencyId}/search-settings",
		getSearchSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Поиск вариантов бронирования видеосвязи
	protected.HandleFunc("/video-link-bookings/options", findBookingOptions.Handle).Methods(http.MethodPost)

	// Поиск свободных комнат на набор интервалов
	protected.HandleFunc("/agencies/{agencyId}/available-locations", findAvailableLocations.Handle).Methods(http.MethodPost)

	// Обновление настроек поиска учреждения
	protected.HandleFunc("/agencies/{agencyId}/search-settings", updateSearchSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (статистика пула, очистка rate limiter)
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
