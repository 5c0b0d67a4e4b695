package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ShiftService/internal/api"
	archiveHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/archive_entities"
	attachServicesHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/attach_services"
	createCategoryHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_category"
	createProviderHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_provider"
	createReservationHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_service"
	createShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/create_shift"
	getFreeSlotsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_free_slots"
	getProviderHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_provider"
	getReservationHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_reservation"
	getServiceHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_service"
	getShiftHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/get_shift"
	listCategoriesHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_categories"
	listMyReservationsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_my_reservations"
	listProvidersHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_providers"
	listReservationsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_services"
	listShiftsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_shifts"
	listUpcomingShiftsHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/list_upcoming_shifts"
	updateStatusHandler "github.com/m04kA/SMC-ShiftService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ShiftService/internal/config"
	categoryRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/category"
	"github.com/m04kA/SMC-ShiftService/internal/infra/storage/migrations"
	providerRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/provider"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/service"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/events"
	catalogService "github.com/m04kA/SMC-ShiftService/internal/service/catalog"
	reservationsService "github.com/m04kA/SMC-ShiftService/internal/service/reservations"
	shiftsService "github.com/m04kA/SMC-ShiftService/internal/service/shifts"
	archiveUC "github.com/m04kA/SMC-ShiftService/internal/usecase/archive_entities"
	attachServicesUC "github.com/m04kA/SMC-ShiftService/internal/usecase/attach_services"
	createReservationUC "github.com/m04kA/SMC-ShiftService/internal/usecase/create_reservation"
	createShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
	expandRecurrenceUC "github.com/m04kA/SMC-ShiftService/internal/usecase/expand_recurrence"
	getFreeSlotsUC "github.com/m04kA/SMC-ShiftService/internal/usecase/get_free_slots"
	updateStatusUC "github.com/m04kA/SMC-ShiftService/internal/usecase/update_reservation_status"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
	"github.com/m04kA/SMC-ShiftService/pkg/txmanager"
)

// eventPublisher общий интерфейс AMQP publisher и events.Noop
type eventPublisher interface {
	ReservationCreated(ctx context.Context, event events.ReservationCreated) error
	ShiftsExpanded(ctx context.Context, event events.ShiftsExpanded) error
	EntitiesArchived(ctx context.Context, event events.EntitiesArchived) error
	Close() error
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

	log.Info("Starting SMC-ShiftService...")

	// Бизнес-метрики пишутся всегда, эндпоинт /metrics поднимается только если метрики включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	categoryRepository := categoryRepo.NewRepository(wrappedDB)
	providerRepository := providerRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	shiftRepository := shiftRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Публикация доменных событий
	var publisher eventPublisher = events.Noop{}
	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err := events.Dial(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Domain events are published to exchange %s", cfg.RabbitMQ.Exchange)
	}
	defer publisher.Close()

	// Use cases
	expandRecurrenceUseCase := expandRecurrenceUC.NewUseCase(shiftRepository, txMgr, metricsCollector, log)
	createShiftUseCase := createShiftUC.NewUseCase(
		shiftRepository,
		serviceRepository,
		providerRepository,
		expandRecurrenceUseCase,
		publisher,
		txMgr,
		log,
	)
	attachServicesUseCase := attachServicesUC.NewUseCase(
		shiftRepository,
		serviceRepository,
		expandRecurrenceUseCase,
		publisher,
		txMgr,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		shiftRepository,
		serviceRepository,
		reservationRepository,
		metricsCollector,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		shiftRepository,
		serviceRepository,
		reservationRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	archiveUseCase := archiveUC.NewUseCase(
		shiftRepository,
		reservationRepository,
		publisher,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(reservationRepository, txMgr, log)

	// Сервисы чтения
	catalogSvc := catalogService.NewService(categoryRepository, providerRepository, serviceRepository, log)
	shiftsSvc := shiftsService.NewService(shiftRepository, serviceRepository, time.Now, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	routes := api.Routes{
		CreateCategory: createCategoryHandler.NewHandler(catalogSvc, log).Handle,
		ListCategories: listCategoriesHandler.NewHandler(catalogSvc, log).Handle,

		CreateProvider: createProviderHandler.NewHandler(catalogSvc, log).Handle,
		ListProviders:  listProvidersHandler.NewHandler(catalogSvc, log).Handle,
		GetProvider:    getProviderHandler.NewHandler(catalogSvc, log).Handle,

		CreateService:      createServiceHandler.NewHandler(catalogSvc, log).Handle,
		ListServices:       listServicesHandler.NewHandler(catalogSvc, log).Handle,
		GetService:         getServiceHandler.NewHandler(catalogSvc, log).Handle,
		ListUpcomingShifts: listUpcomingShiftsHandler.NewHandler(shiftsSvc, log).Handle,

		CreateShift:    createShiftHandler.NewHandler(createShiftUseCase, log).Handle,
		ListShifts:     listShiftsHandler.NewHandler(shiftsSvc, log).Handle,
		GetShift:       getShiftHandler.NewHandler(shiftsSvc, log).Handle,
		AttachServices: attachServicesHandler.NewHandler(attachServicesUseCase, log).Handle,
		GetFreeSlots:   getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log).Handle,

		Archive: archiveHandler.NewHandler(archiveUseCase, log).Handle,

		CreateReservation:       createReservationHandler.NewHandler(createReservationUseCase, log).Handle,
		ListReservations:        listReservationsHandler.NewHandler(reservationsSvc, log).Handle,
		ListMyReservations:      listMyReservationsHandler.NewHandler(reservationsSvc, log).Handle,
		GetReservation:          getReservationHandler.NewHandler(reservationsSvc, log).Handle,
		UpdateReservationStatus: updateStatusHandler.NewHandler(updateStatusUseCase, log).Handle,
	}

	metricsOpts := api.MetricsOptions{}
	if cfg.Metrics.Enabled {
		metricsOpts.Collector = metricsCollector
		metricsOpts.Path = cfg.Metrics.Path
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      api.NewRouter(routes, metricsOpts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server is listening on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		close(stopMetricsCh)

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("%v", err)
		return
	}

	log.Info("Server exited")
}
