package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

type stores struct {
	salons       domain.SalonRepository
	appointments domain.AppointmentRepository
	sink         audit.Sink
	reader       audit.Reader
	db           *gorm.DB
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// ======================================================
	// STORE
	// ======================================================
	st, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	if st.db != nil {
		defer func() {
			if err := dbpkg.Close(st.db); err != nil {
				logger.Error("close database", "error", err)
			}
		}()
	}

	dispatcher := audit.NewDispatcher(st.sink)
	clock := timezone.NewClock(cfg.Timezone)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("salon")
	}

	// ======================================================
	// SLOT LOCK (optional)
	// ======================================================
	var locker domain.SlotLocker
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return errors.Wrapf(err, "ping redis at %s", cfg.RedisAddr)
		}
		locker = slotlock.NewRedisLocker(client)
		logger.Info("slot lock enabled", "redis_addr", cfg.RedisAddr)
	}

	// ======================================================
	// REMINDERS
	// ======================================================
	var scheduler *reminder.Scheduler
	if cfg.ReminderCron != "" {
		sweeper := reminder.NewSweeper(st.appointments, dispatcher, m, clock)
		scheduler, err = reminder.NewScheduler(cfg.ReminderCron, timezone.Location(cfg.Timezone), sweeper)
		if err != nil {
			return err
		}
		scheduler.Start()
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Logger:       logger,
		Salons:       st.salons,
		Appointments: st.appointments,
		Locker:       locker,
		Audit:        dispatcher,
		AuditReader:  st.reader,
		Metrics:      m,
		Clock:        clock,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if scheduler != nil {
		scheduler.Stop(ctx)
	}
	if err := dispatcher.Close(ctx); err != nil {
		logger.Error("audit queue not drained", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func openStores(cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		mem := memstore.New()
		sink := audit.NewMemorySink(audit.NewLogSink(logger))
		logger.Warn("using in-memory store, data is lost on restart")
		return &stores{salons: mem, appointments: mem, sink: sink, reader: sink}, nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	sink := audit.NewGormSink(db)
	return &stores{
		salons:       infraRepo.NewSalonGormRepository(db),
		appointments: infraRepo.NewAppointmentGormRepository(db),
		sink:         sink,
		reader:       sink,
		db:           db,
	}, nil
}

// newLogger writes JSON in gin release mode and text otherwise.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if gin.Mode() == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
