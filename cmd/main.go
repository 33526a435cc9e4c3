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

	allocateSpaceHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/allocate_space"
	cancelReservationHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/create_reservation"
	createSpaceHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/create_space"
	deleteReservationHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/delete_reservation"
	deleteSpaceHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/delete_space"
	getFreeSlotsHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/get_free_slots"
	getOccupancyHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/get_space"
	getUserReservationsHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/list_reservations"
	listSpacesHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/list_spaces"
	updateReservationHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/update_reservation_status"
	updateSpaceHandler "github.com/m04kA/SMC-ReservesService/internal/api/handlers/update_space"
	"github.com/m04kA/SMC-ReservesService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservesService/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
	reservationsService "github.com/m04kA/SMC-ReservesService/internal/service/reservations"
	spacesService "github.com/m04kA/SMC-ReservesService/internal/service/spaces"
	allocateSpaceUC "github.com/m04kA/SMC-ReservesService/internal/usecase/allocate_space"
	createReservationUC "github.com/m04kA/SMC-ReservesService/internal/usecase/create_reservation"
	getFreeSlotsUC "github.com/m04kA/SMC-ReservesService/internal/usecase/get_free_slots"
	occupancyScoreUC "github.com/m04kA/SMC-ReservesService/internal/usecase/occupancy_score"
	updateReservationUC "github.com/m04kA/SMC-ReservesService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ReservesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservesService/pkg/logger"
	"github.com/m04kA/SMC-ReservesService/pkg/metrics"
	"github.com/m04kA/SMC-ReservesService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservesService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservesService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики: счетчики движка нужны usecases всегда,
	// endpoint и HTTP middleware включаются по конфигурации
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		spaceRepository       *spaceRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		spaceRepository = spaceRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	spacesSvc := spacesService.NewService(spaceRepository, reservationRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	allocateSpaceUseCase := allocateSpaceUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(spaceRepository, reservationRepository, log)
	occupancyScoreUseCase := occupancyScoreUC.NewUseCase(spaceRepository, reservationRepository, log)

	// Инициализируем handlers
	listSpaces := listSpacesHandler.NewHandler(spacesSvc, log)
	getSpace := getSpaceHandler.NewHandler(spacesSvc, log)
	createSpace := createSpaceHandler.NewHandler(spacesSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spacesSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(spacesSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(occupancyScoreUseCase, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

	allocateSpace := allocateSpaceHandler.NewHandler(allocateSpaceUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог пространств
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)

	// Свободные окна пространства
	api.HandleFunc("/spaces/{spaceId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Загруженность пространства за скользящие 30 дней
	api.HandleFunc("/spaces/{spaceId}/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Управление пространствами ---
	protected.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/spaces/{spaceId}", deleteSpace.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Создание бронирования с проверкой конфликтов
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// История бронирований текущего пользователя
	// Регистрируется раньше маршрута с {reservationId}
	protected.HandleFunc("/reservations/my", getUserReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение окна бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Отмена бронирования (идемпотентная)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Административная смена статуса
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Физическое удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Автоподбор пространства ---
	protected.HandleFunc("/allocations", allocateSpace.Handle).Methods(http.MethodPost)

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
