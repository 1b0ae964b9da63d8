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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	checkSlotHandler "github.com/bellemadame/booking-service/internal/api/handlers/check_slot"
	createBookingHandler "github.com/bellemadame/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/bellemadame/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/bellemadame/booking-service/internal/api/handlers/get_booking"
	getSalonConfigHandler "github.com/bellemadame/booking-service/internal/api/handlers/get_salon_config"
	listServicesHandler "github.com/bellemadame/booking-service/internal/api/handlers/list_services"
	listStaffHandler "github.com/bellemadame/booking-service/internal/api/handlers/list_staff"
	"github.com/bellemadame/booking-service/internal/api/middleware"
	"github.com/bellemadame/booking-service/internal/config"
	bookingRepo "github.com/bellemadame/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
	bookingsService "github.com/bellemadame/booking-service/internal/service/bookings"
	catalogService "github.com/bellemadame/booking-service/internal/service/catalog"
	remindersService "github.com/bellemadame/booking-service/internal/service/reminders"
	createBookingUC "github.com/bellemadame/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/bellemadame/booking-service/internal/usecase/get_available_slots"
	"github.com/bellemadame/booking-service/internal/validation"
	"github.com/bellemadame/booking-service/pkg/dbmetrics"
	"github.com/bellemadame/booking-service/pkg/logger"
	"github.com/bellemadame/booking-service/pkg/metrics"
	"github.com/bellemadame/booking-service/pkg/simpletxmanager"
	"github.com/bellemadame/booking-service/pkg/txmanager"
)

func main() {
	// Twilio credentials and local overrides live in .env, never in config.toml
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	weeklyHours, err := cfg.WeeklyHours()
	if err != nil {
		log.Fatal("Invalid opening hours configuration: %v", err)
	}

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	phoneValidator := validation.NewPhoneValidator()

	var smsFrom, twilioSID, twilioToken string
	if cfg.SMS.Enabled {
		smsFrom = cfg.SMS.FromNumber
		twilioSID = os.Getenv("TWILIO_ACCOUNT_SID")
		twilioToken = os.Getenv("TWILIO_AUTH_TOKEN")
	}

	// A nil *metrics.Metrics must stay a nil interface inside the client.
	var smsMetrics smsgateway.MetricsObserver
	if metricsCollector != nil {
		smsMetrics = metricsCollector
	}
	smsClient := smsgateway.NewClient(
		twilioSID,
		twilioToken,
		smsFrom,
		cfg.SMS.CountryCode,
		cfg.Salon.BusinessName,
		log,
		smsMetrics,
	)

	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, catalogRepository, weeklyHours, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	reminderSvc := remindersService.NewService(
		bookingRepository,
		smsClient,
		remindersService.RealTimeProvider{},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		phoneValidator,
		smsClient,
		txMgr,
		weeklyHours,
		createBookingUC.RealTimeProvider{},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		weeklyHours,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	getSalonConfig := getSalonConfigHandler.NewHandler(cfg.Salon.BusinessName, cfg.Salon.Currency, weeklyHours, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/staff/{staffId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Bookings
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/check", checkSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Salon profile
	api.HandleFunc("/salon", getSalonConfig.Handle).Methods(http.MethodGet)

	// Reminder schedule
	var reminderCron *cron.Cron
	if cfg.Reminders.Enabled {
		reminderCron = cron.New()
		_, err := reminderCron.AddFunc(cfg.Reminders.CronSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			if _, err := reminderSvc.Run(ctx); err != nil {
				log.Error("Reminder run failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Invalid reminder cron spec %q: %v", cfg.Reminders.CronSpec, err)
		}
		reminderCron.Start()
		log.Info("Reminder schedule started (%s)", cfg.Reminders.CronSpec)

		if cfg.Reminders.RunOnStart {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				defer cancel()

				if _, err := reminderSvc.Run(ctx); err != nil {
					log.Error("Startup reminder run failed: %v", err)
				}
			}()
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if reminderCron != nil {
		cronCtx := reminderCron.Stop()
		<-cronCtx.Done()
		log.Info("Reminder schedule stopped")
	}

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
