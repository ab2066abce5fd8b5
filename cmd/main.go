package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/TMP-SchedulingService/internal/api/handlers/create_booking"
	getBookingOptionsHandler "github.com/m04kA/TMP-SchedulingService/internal/api/handlers/get_booking_options"
	getPriceQuoteHandler "github.com/m04kA/TMP-SchedulingService/internal/api/handlers/get_price_quote"
	previewBookingHandler "github.com/m04kA/TMP-SchedulingService/internal/api/handlers/preview_booking"
	"github.com/m04kA/TMP-SchedulingService/internal/api/middleware"
	"github.com/m04kA/TMP-SchedulingService/internal/config"
	bookingServiceClient "github.com/m04kA/TMP-SchedulingService/internal/integrations/bookingservice"
	pricingService "github.com/m04kA/TMP-SchedulingService/internal/service/pricing"
	schedulingService "github.com/m04kA/TMP-SchedulingService/internal/service/scheduling"
	createBookingUC "github.com/m04kA/TMP-SchedulingService/internal/usecase/create_booking"
	previewBookingUC "github.com/m04kA/TMP-SchedulingService/internal/usecase/preview_booking"
	"github.com/m04kA/TMP-SchedulingService/pkg/logger"
	"github.com/m04kA/TMP-SchedulingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting TMP-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента Booking Submission Service
	// Учетные данные приходят из заголовка Authorization входящего запроса
	// и пробрасываются в бэкенд как есть
	var upstreamMetrics bookingServiceClient.MetricsCollector
	if metricsCollector != nil {
		upstreamMetrics = metricsCollector
	}
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		middleware.NewContextCredentials(),
		upstreamMetrics,
		log,
	)
	log.Info("Booking service client initialized (url=%s, timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Инициализируем сервисы
	schedulingSvc := schedulingService.NewService(log)
	pricingSvc := pricingService.NewService(log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(schedulingSvc, bookingClient, log)
	previewBookingUseCase := previewBookingUC.NewUseCase(schedulingSvc, pricingSvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	previewBooking := previewBookingHandler.NewHandler(previewBookingUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(pricingSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(schedulingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Наборы значений для пикеров формы бронирования
	api.HandleFunc("/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)

	// Справочный расчет стоимости сессии
	api.HandleFunc("/price-quote", getPriceQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют заголовок Authorization)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования (проксируется в Booking Submission Service)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Предпросмотр окна сессии и справочной цены
	protected.HandleFunc("/bookings/preview", previewBooking.Handle).Methods(http.MethodPost)

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
