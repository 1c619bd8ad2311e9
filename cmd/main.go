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

	createBookingHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/create_booking"
	createBusinessHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/create_business"
	createServiceHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_available_slots"
	getBookingReminderHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_booking_reminder"
	getBusinessHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_business"
	getCatalogHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_catalog"
	getDirectoryHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_directory"
	getSessionHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/get_session"
	listBookingsHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/list_bookings"
	listBusinessesHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/list_businesses"
	listCustomersHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/list_customers"
	listServicesHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/list_services"
	loginHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/login"
	registerHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/register"
	setServiceActiveHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/set_service_active"
	updateBookingStatusHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/update_booking_status"
	updateBusinessHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/update_business"
	updateProfileHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/update_profile"
	updateServiceHandler "github.com/Andrez18/lummoo-core/internal/api/handlers/update_service"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/config"
	"github.com/Andrez18/lummoo-core/internal/infra/events"
	accountRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/account"
	bookingRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/booking"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	customerRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/customer"
	profileRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/profile"
	serviceRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/service"
	accountsService "github.com/Andrez18/lummoo-core/internal/service/accounts"
	bookingsService "github.com/Andrez18/lummoo-core/internal/service/bookings"
	businessesService "github.com/Andrez18/lummoo-core/internal/service/businesses"
	customersService "github.com/Andrez18/lummoo-core/internal/service/customers"
	directoryService "github.com/Andrez18/lummoo-core/internal/service/directory"
	profilesService "github.com/Andrez18/lummoo-core/internal/service/profiles"
	servicesService "github.com/Andrez18/lummoo-core/internal/service/services"
	createBookingUC "github.com/Andrez18/lummoo-core/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Andrez18/lummoo-core/internal/usecase/get_available_slots"
	"github.com/Andrez18/lummoo-core/pkg/authtoken"
	"github.com/Andrez18/lummoo-core/pkg/dbmetrics"
	"github.com/Andrez18/lummoo-core/pkg/logger"
	"github.com/Andrez18/lummoo-core/pkg/metrics"
	"github.com/Andrez18/lummoo-core/pkg/ratelimit"
	"github.com/Andrez18/lummoo-core/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("LUMMOO_CONFIG"); v != "" {
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

	log.Info("Starting lummoo-core...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: обертки и счетчики его пропускают
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	accountRepository := accountRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)
	businessRepository := businessRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Токены сессии
	issuer, err := authtoken.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatal("Failed to initialize token issuer: %v", err)
	}

	// Публикация событий о бронированиях
	var publisher createBookingUC.EventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Лимитер публичного создания бронирований
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
			}
			cancel()

			limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Limit, window, "lummoo:ratelimit:")
			log.Info("Redis rate limiter enabled (addr=%s, limit=%d/%s)", cfg.Redis.Addr, cfg.RateLimit.Limit, window)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, window)
			log.Info("In-memory rate limiter enabled (limit=%d/%s)", cfg.RateLimit.Limit, window)
		}
	}

	// Инициализируем сервисы
	accountSvc := accountsService.NewService(accountRepository, profileRepository, issuer, txMgr, log)
	profileSvc := profilesService.NewService(profileRepository, log)
	directorySvc := directoryService.NewService(businessRepository, serviceRepository, log)
	businessSvc := businessesService.NewService(businessRepository, log)
	serviceSvc := servicesService.NewService(serviceRepository, businessRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, businessRepository, log)
	customerSvc := customersService.NewService(customerRepository, businessRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		businessRepository,
		serviceRepository,
		customerRepository,
		bookingRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		serviceRepository,
		bookingRepository,
		getAvailableSlotsUC.Options{
			StepMinutes: cfg.Booking.SlotStepMinutes,
			Static:      cfg.Booking.StaticSlots,
		},
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(accountSvc, log)
	login := loginHandler.NewHandler(accountSvc, log)
	getDirectory := getDirectoryHandler.NewHandler(directorySvc, log)
	getCatalog := getCatalogHandler.NewHandler(directorySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getSession := getSessionHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	listBusinesses := listBusinessesHandler.NewHandler(businessSvc, log)
	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateBusiness := updateBusinessHandler.NewHandler(businessSvc, log)
	listServices := listServicesHandler.NewHandler(serviceSvc, log)
	createService := createServiceHandler.NewHandler(serviceSvc, log)
	updateService := updateServiceHandler.NewHandler(serviceSvc, log)
	deleteService := deleteServiceHandler.NewHandler(serviceSvc, log)
	setServiceActive := setServiceActiveHandler.NewHandler(serviceSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBookingReminder := getBookingReminderHandler.NewHandler(bookingSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

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

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог бизнесов и услуг
	api.HandleFunc("/directory", getDirectory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Доступные слоты и публичное бронирование
	api.HandleFunc("/businesses/{businessId}/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	if limiter != nil {
		createBookingRoute = middleware.RateLimit(limiter, metricsCollector, cfg.RateLimit.FailOpen, log)(createBookingRoute)
	}
	api.Handle("/businesses/{businessId}/bookings", createBookingRoute).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(issuer, profileSvc, log))

	// --- Сессия и профиль ---
	protected.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)

	// --- Бизнесы ---
	protected.HandleFunc("/businesses", listBusinesses.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses", createBusiness.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}", getBusiness.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}", updateBusiness.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	protected.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/services/{serviceId}/active", setServiceActive.Handle).Methods(http.MethodPatch)

	// --- Бронирования и клиенты ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reminder", getBookingReminder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(log))
	admin.HandleFunc("/users", register.Handle).Methods(http.MethodPost)

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
