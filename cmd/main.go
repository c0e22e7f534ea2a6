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

	activitiesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/activities"
	assignEmployeeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/assign_employee"
	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	createWorkingTimeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_working_time"
	deleteBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_booking"
	deleteWorkingTimeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_working_time"
	employeesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/employees"
	getBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_booking"
	getFreeSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_free_slots"
	getHistoryHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_history"
	getMonthBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_month_bookings"
	getRosterHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_roster"
	getRosterWindowHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_roster_window"
	getUserBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_user_bookings"
	updateWorkingTimeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/customer"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	workingTimeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	activitiesService "github.com/m04kA/SMC-AppointmentService/internal/service/activities"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	employeesService "github.com/m04kA/SMC-AppointmentService/internal/service/employees"
	rosterService "github.com/m04kA/SMC-AppointmentService/internal/service/roster"
	assignEmployeeUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/assign_employee"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	createWorkingTimeUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_working_time"
	deleteWorkingTimeUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_working_time"
	getFreeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
	getHistoryUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_history"
	updateWorkingTimeUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_time"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

func main() {
	// Путь к конфигу можно переопределить переменной окружения
	configPath := os.Getenv("APPOINTMENT_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from %s (timezone=%s, week_start=%s)",
		configPath, cfg.Scheduling.Location(), cfg.Scheduling.Weekday())

	// Инициализируем метрики (если включены); nil-коллектор метрики не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = wrappedDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	workingTimeRepository := workingTimeRepo.NewRepository(wrappedDB)
	activityRepository := activityRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	calendar := scheduling.Calendar{
		Location:  cfg.Scheduling.Location(),
		WeekStart: cfg.Scheduling.Weekday(),
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, calendar.Location, log)
	activitySvc := activitiesService.NewService(activityRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, log)
	rosterSvc := rosterService.NewService(workingTimeRepository, calendar, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		workingTimeRepository,
		customerRepository,
		employeeRepository,
		activityRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		bookingRepository,
		workingTimeRepository,
		employeeRepository,
		activityRepository,
		log,
	)

	createWorkingTimeUseCase := createWorkingTimeUC.NewUseCase(
		workingTimeRepository,
		employeeRepository,
		txMgr,
		calendar,
		metricsCollector,
		log,
	)

	updateWorkingTimeUseCase := updateWorkingTimeUC.NewUseCase(
		workingTimeRepository,
		bookingRepository,
		employeeRepository,
		txMgr,
		calendar,
		metricsCollector,
		log,
	)

	deleteWorkingTimeUseCase := deleteWorkingTimeUC.NewUseCase(
		workingTimeRepository,
		bookingRepository,
		txMgr,
		calendar,
		metricsCollector,
		log,
	)

	assignEmployeeUseCase := assignEmployeeUC.NewUseCase(
		bookingRepository,
		workingTimeRepository,
		employeeRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getHistoryUseCase := getHistoryUC.NewUseCase(bookingRepository, calendar.Location, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getMonthBookings := getMonthBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	assignEmployee := assignEmployeeHandler.NewHandler(assignEmployeeUseCase, log)
	getHistory := getHistoryHandler.NewHandler(getHistoryUseCase, log)
	getRoster := getRosterHandler.NewHandler(rosterSvc, log)
	getRosterWindow := getRosterWindowHandler.NewHandler(rosterSvc)
	createWorkingTime := createWorkingTimeHandler.NewHandler(createWorkingTimeUseCase, log)
	updateWorkingTime := updateWorkingTimeHandler.NewHandler(updateWorkingTimeUseCase, log)
	deleteWorkingTime := deleteWorkingTimeHandler.NewHandler(deleteWorkingTimeUseCase, log)
	activities := activitiesHandler.NewHandler(activitySvc, log)
	employees := employeesHandler.NewHandler(employeeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ADMIN ROUTES (X-User-ID + X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", createBooking.HandleAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{monthYear}", getMonthBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)

	// --- Сотрудники ---
	admin.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	admin.HandleFunc("/employees", employees.Create).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{employeeId}", employees.Get).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{employeeId}/assign", assignEmployee.Handle).Methods(http.MethodPost)

	// --- Расписание сотрудников ---
	admin.HandleFunc("/roster-window", getRosterWindow.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/roster", createWorkingTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/roster/{monthYear}", getRoster.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/roster/{workingTimeId}", updateWorkingTime.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/roster/{workingTimeId}", deleteWorkingTime.Handle).Methods(http.MethodDelete)

	// --- Справочник услуг ---
	admin.HandleFunc("/activities", activities.Create).Methods(http.MethodPost)
	admin.HandleFunc("/activities/{activityId}", activities.Update).Methods(http.MethodPut)
	admin.HandleFunc("/activities/{activityId}", activities.Delete).Methods(http.MethodDelete)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/employees/{employeeId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities", activities.List).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.HandleCustomer).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
