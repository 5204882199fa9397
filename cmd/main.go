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

	createAppointmentHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/create_customer"
	deleteAppointmentHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/delete_appointment"
	deleteCustomerHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/delete_customer"
	getBusinessHoursHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/get_business_hours"
	getReferenceDataHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/get_reference_data"
	listAppointmentsHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/list_appointments"
	listCustomersHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/list_customers"
	loginHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/login"
	reportsHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/reports"
	updateAppointmentHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/update_appointment"
	updateCustomerHandler "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers/update_customer"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/middleware"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/config"
	appointmentRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/appointment"
	customerRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/customer"
	referenceRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/reference"
	reportRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/report"
	userRepo "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/infra/storage/user"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/scheduling"
	appointmentsService "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/appointments"
	customersService "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/customers"
	identityService "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/identity"
	reportsService "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/service/reports"
	createAppointmentUC "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/usecase/update_appointment"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/dbmetrics"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/logger"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/metrics"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/simpletxmanager"
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/txmanager"
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

	log.Info("Starting customer scheduling management system...")
	log.Info("Configuration loaded from config.toml")

	// Собираем правила планирования
	businessHours, err := scheduling.NewBusinessHours(
		cfg.Scheduling.BusinessTimeZone,
		cfg.Scheduling.OpeningTime,
		cfg.Scheduling.OperatingHours,
	)
	if err != nil {
		log.Fatal("Failed to build business hours: %v", err)
	}
	validator := scheduling.NewValidator(businessHours, cfg.Scheduling.MaxAppointmentHours)
	log.Info("Business hours: opening %s for %dh in %s, max appointment %dh",
		cfg.Scheduling.OpeningTime, cfg.Scheduling.OperatingHours,
		cfg.Scheduling.BusinessTimeZone, cfg.Scheduling.MaxAppointmentHours)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		referenceRepository   *referenceRepo.Repository
		reportRepository      *reportRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		referenceRepository = referenceRepo.NewRepository(wrappedDB)
		reportRepository = reportRepo.NewRepository(wrappedDB, cfg.Scheduling.BusinessTimeZone)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		referenceRepository = referenceRepo.NewRepository(db)
		reportRepository = reportRepo.NewRepository(db, cfg.Scheduling.BusinessTimeZone)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Журнал попыток входа
	activityFile := cfg.Logs.ActivityFile
	if activityFile == "" {
		activityFile = "login_activity.txt"
	}
	activityRecorder := identityService.NewFileActivityRecorder(activityFile)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, businessHours.Location(), log)
	customersSvc := customersService.NewService(customerRepository, appointmentRepository, txMgr, log)
	identitySvc := identityService.NewService(userRepository, activityRecorder, log)
	reportsSvc := reportsService.NewService(reportRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		referenceRepository,
		userRepository,
		validator,
		txMgr,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		referenceRepository,
		userRepository,
		validator,
		txMgr,
		log,
	)

	imminentWindow := time.Duration(cfg.Scheduling.ImminentWindowMinutes) * time.Minute

	// Инициализируем handlers
	login := loginHandler.NewHandler(identitySvc, appointmentsSvc, imminentWindow, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(businessHours, cfg.Scheduling.SlotWindowHours, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customersSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customersSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customersSvc, log)
	getReferenceData := getReferenceDataHandler.NewHandler(referenceRepository, log)
	reports := reportsHandler.NewHandler(reportsSvc, appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается ID
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход в систему
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// Доступные слоты начала встреч
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", listAppointments.HandleByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{customerId}", listCustomers.HandleByID).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Справочники ---
	protected.HandleFunc("/contacts", getReferenceData.HandleContacts).Methods(http.MethodGet)
	protected.HandleFunc("/countries", getReferenceData.HandleCountries).Methods(http.MethodGet)
	protected.HandleFunc("/countries/{countryId}/divisions", getReferenceData.HandleDivisions).Methods(http.MethodGet)

	// --- Отчеты ---
	protected.HandleFunc("/reports/appointments-by-type", reports.HandleByType).Methods(http.MethodGet)
	protected.HandleFunc("/reports/appointments-by-customer", reports.HandleByCustomer).Methods(http.MethodGet)
	protected.HandleFunc("/reports/appointments-by-contact", reports.HandleByContact).Methods(http.MethodGet)
	protected.HandleFunc("/contacts/{contactId}/schedule", reports.HandleContactSchedule).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
