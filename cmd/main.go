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

	bookServiceCallHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/book_service_call"
	diagnosticsHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/diagnostics"
	getCapacityHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/get_capacity"
	lookupCustomerHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/lookup_customer"
	recentBookingsHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/recent_bookings"
	requestCallbackHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/request_callback"
	searchAvailabilityHandler "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers/search_availability"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/middleware"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/config"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/infra/storage/bookinglog"
	housecallClient "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
	callbacksService "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/callbacks"
	customersService "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/customers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/notify"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/servicearea"
	bookServiceCallUC "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/book_service_call"
	getCapacityUC "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/get_capacity"
	searchAvailabilityUC "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/search_availability"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/logger"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/metrics"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/tooldiag"
)

func main() {
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

	log.Info("Starting booking engine...")
	log.Info("Configuration loaded from config.toml")

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// The diagnostics registry counts every chat-facing operation; when
	// metrics are on it also feeds the Prometheus collectors.
	var diagSink tooldiag.Sink
	if metricsCollector != nil {
		diagSink = metricsCollector
	}
	diagRegistry := tooldiag.NewRegistry(diagSink)

	// Optional booking log. The CRM remains the system of record, so a
	// disabled database just drops the audit trail.
	var bookingLog bookServiceCallUC.BookingLog = bookinglog.Nop{}
	var bookingRepo *bookinglog.Repository
	if cfg.Database.Enabled {
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
		log.Info("Booking log connected (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepo = bookinglog.NewRepository(db)
		bookingLog = bookingRepo
	} else {
		log.Info("Booking log disabled, running stateless")
	}

	crm := housecallClient.NewClient(
		cfg.Housecall.URL,
		cfg.Housecall.APIKey,
		time.Duration(cfg.Housecall.Timeout)*time.Second,
		cfg.Housecall.PageSize,
		log,
	)
	log.Info("CRM client initialized (url=%s timeout=%ds)", cfg.Housecall.URL, cfg.Housecall.Timeout)

	gate := servicearea.NewGate(cfg.ServiceArea.ExtraZips)
	customersSvc := customersService.NewService(crm, log)
	callbacksSvc := callbacksService.NewService(customersSvc, crm, log)

	var notifier bookServiceCallUC.Notifier = notify.Nop{}
	if cfg.Booking.NotifyOnBooked {
		notifier = notify.NewLogNotifier(log)
	}

	bookUseCase := bookServiceCallUC.NewUseCase(crm, customersSvc, gate, notifier, bookingLog,
		bookServiceCallUC.Policy{DefaultLeadSource: cfg.Booking.DefaultLeadSource}, loc, log)
	availabilityUseCase := searchAvailabilityUC.NewUseCase(crm, loc, log)
	capacityUseCase := getCapacityUC.NewUseCase(
		crm,
		cfg.Capacity.Thresholds(),
		getCapacityUC.Policy{
			SnapshotTTL:     time.Duration(cfg.Capacity.SnapshotTTLMinutes) * time.Minute,
			ExpressLeadTime: time.Duration(cfg.Capacity.ExpressLeadHours) * time.Hour,
		},
		loc,
		log,
	)

	bookServiceCall := bookServiceCallHandler.NewHandler(bookUseCase, log)
	searchAvailability := searchAvailabilityHandler.NewHandler(availabilityUseCase, log)
	getCapacity := getCapacityHandler.NewHandler(capacityUseCase, log)
	lookupCustomer := lookupCustomerHandler.NewHandler(customersSvc, log)
	requestCallback := requestCallbackHandler.NewHandler(callbacksSvc, log)
	diagnostics := diagnosticsHandler.NewHandler(diagRegistry, log)

	r := mux.NewRouter()
	r.Use(middleware.Correlation)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	wrap := func(tool string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.ToolDiag(diagRegistry, tool, h)
	}

	api.HandleFunc("/bookings",
		wrap("book_service_call", bookServiceCall.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/availability",
		wrap("search_availability", searchAvailability.Handle)).Methods(http.MethodGet)
	api.HandleFunc("/capacity",
		wrap("get_capacity", getCapacity.Handle)).Methods(http.MethodGet)
	api.HandleFunc("/customers/lookup",
		wrap("lookup_customer", lookupCustomer.Handle)).Methods(http.MethodGet)
	api.HandleFunc("/callbacks/reschedule",
		wrap("request_reschedule", requestCallback.HandleReschedule)).Methods(http.MethodPost)
	api.HandleFunc("/callbacks/cancel",
		wrap("request_cancellation", requestCallback.HandleCancel)).Methods(http.MethodPost)
	api.HandleFunc("/diagnostics/tools", diagnostics.Handle).Methods(http.MethodGet)

	// The booking audit trail only exists when the database is on.
	if bookingRepo != nil {
		recentBookings := recentBookingsHandler.NewHandler(bookingRepo, log)
		api.HandleFunc("/diagnostics/bookings", recentBookings.Handle).Methods(http.MethodGet)
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
