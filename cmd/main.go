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

	createAppointmentHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/get_availability"
	getSlotsHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/get_slots"
	listAppointmentsHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/list_appointments"
	selectionHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/selection"
	updateAvailabilityHandler "github.com/sarthakk1890/CureAi/internal/api/handlers/update_availability"
	"github.com/sarthakk1890/CureAi/internal/api/middleware"
	"github.com/sarthakk1890/CureAi/internal/config"
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/internal/infra/cache/schedulecache"
	appointmentServiceClient "github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
	doctorServiceClient "github.com/sarthakk1890/CureAi/internal/integrations/doctorservice"
	availabilityService "github.com/sarthakk1890/CureAi/internal/service/availability"
	calendarService "github.com/sarthakk1890/CureAi/internal/service/calendar"
	bookAppointmentUC "github.com/sarthakk1890/CureAi/internal/usecase/book_appointment"
	generateSlotsUC "github.com/sarthakk1890/CureAi/internal/usecase/generate_slots"
	"github.com/sarthakk1890/CureAi/pkg/logger"
	"github.com/sarthakk1890/CureAi/pkg/metrics"
)

// scheduleCache объединяет операции кэша, нужные всем потребителям сразу
type scheduleCache interface {
	GetConfig(doctorID string) (*domain.AvailabilityConfig, bool)
	StoreConfig(doctorID string, cfg *domain.AvailabilityConfig)
	GetBookedWindows(doctorID string) ([]domain.BookedWindow, bool)
	StoreBookedWindows(doctorID string, windows []domain.BookedWindow)
	InvalidateBookedWindows(doctorID string)
	Invalidate(doctorID string)
}

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

	log.Info("Starting CureAi booking core...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	doctorClient := doctorServiceClient.NewClient(
		cfg.DoctorService.URL,
		time.Duration(cfg.DoctorService.Timeout)*time.Second,
		log,
	)
	appointmentClient := appointmentServiceClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DoctorService=%s timeout=%ds, AppointmentService=%s timeout=%ds)",
		cfg.DoctorService.URL, cfg.DoctorService.Timeout, cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)

	// Инициализируем кэш расписаний
	var cache scheduleCache
	if cfg.Cache.Enabled {
		lruCache, err := schedulecache.New(cfg.Cache.Size, log)
		if err != nil {
			log.Fatal("Failed to initialize schedule cache: %v", err)
		}
		cache = lruCache
		log.Info("Schedule cache enabled (size=%d doctors)", cfg.Cache.Size)
	} else {
		cache = schedulecache.NewNoop()
		log.Info("Schedule cache disabled")
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(doctorClient, cache, log)
	calendarSvc := calendarService.NewService(log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		doctorClient,
		appointmentClient,
		cache,
		cfg.Generator.StrictOverlapCheck,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		doctorClient,
		appointmentClient,
		cache,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(generateSlotsUseCase, metricsCollector, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, calendarSvc, metricsCollector, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentClient, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	selection := selectionHandler.NewHandler(calendarSvc, availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
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

	// Доступные слоты доктора на дату
	api.HandleFunc("/doctors/{doctorId}/slots", getSlots.Handle).Methods(http.MethodGet)

	// Конфигурация доступности доктора
	api.HandleFunc("/doctors/{doctorId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей пациента
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// --- Управление доступностью (для докторов) ---
	protected.HandleFunc("/doctors/{doctorId}/availability", updateAvailability.Handle).Methods(http.MethodPut)

	// --- Сессия выбора даты и времени ---
	protected.HandleFunc("/selection/open", selection.HandleOpen).Methods(http.MethodPost)
	protected.HandleFunc("/selection/close", selection.HandleClose).Methods(http.MethodPost)
	protected.HandleFunc("/selection", selection.HandleState).Methods(http.MethodGet)
	protected.HandleFunc("/selection/month/next", selection.HandleAdvanceMonth).Methods(http.MethodPost)
	protected.HandleFunc("/selection/month/prev", selection.HandleRetreatMonth).Methods(http.MethodPost)
	protected.HandleFunc("/selection/date", selection.HandleSelectDate).Methods(http.MethodPost)
	protected.HandleFunc("/selection/slot", selection.HandleSelectSlot).Methods(http.MethodPost)
	protected.HandleFunc("/selection/reason", selection.HandleSetReason).Methods(http.MethodPost)
	protected.HandleFunc("/selection/reset", selection.HandleReset).Methods(http.MethodPost)
	protected.HandleFunc("/selection/grid", selection.HandleGrid).Methods(http.MethodGet)

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
