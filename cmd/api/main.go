package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/gym-scheduler/internal/jobs"
	"github.com/BruksfildServices01/gym-scheduler/internal/logging"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	"github.com/BruksfildServices01/gym-scheduler/internal/routes"
	"github.com/BruksfildServices01/gym-scheduler/internal/session"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
	"github.com/BruksfildServices01/gym-scheduler/internal/throttle"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	"github.com/BruksfildServices01/gym-scheduler/internal/tracing"
	ucMembership "github.com/BruksfildServices01/gym-scheduler/internal/usecase/membership"
)

const serviceName = "gym-scheduler"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.Setup(serviceName)

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
	})
	if err != nil {
		logger.Error("tracing setup failed", "err", err)
		os.Exit(1)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database setup failed", "err", err)
		os.Exit(1)
	}

	clock := timezone.NewClock(cfg.Timezone)

	// ======================================================
	// REDIS (optional)
	// ======================================================
	revoker, limiter, rdb := sessionStores(ctx, cfg, logger)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	membershipRepo := infraRepo.NewMembershipGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var photos storage.PhotoStore
	if cfg.S3.Enabled() {
		photos = storage.NewS3Store(cfg.S3)
	} else {
		photos = storage.NewLocalStore(cfg.MediaRoot, "/media")
	}

	scheduler, err := jobs.StartMembershipExpiry(
		clock.Location(),
		ucMembership.NewExpireMemberships(membershipRepo, clock),
	)
	if err != nil {
		logger.Error("scheduler setup failed", "err", err)
		os.Exit(1)
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Recovery(logger),
		gzip.Gzip(gzip.DefaultCompression),
	)

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:       cfg,
		Clock:        clock,
		Accounts:     infraRepo.NewAccountGormRepository(db),
		Appointments: appointmentRepo,
		Memberships:  membershipRepo,
		CarePlans:    infraRepo.NewCarePlanGormRepository(db),
		Reports:      infraRepo.NewReportGormRepository(db),
		Photos:       photos,
		Sessions:     session.NewManager(cfg.JWTSecret, cfg.SessionTTL, revoker),
		Limiter:      limiter,
		Audit:        auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	scheduler.Stop()
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		logger.Error("audit flush failed", "err", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}

// sessionStores uses Redis for revoked sessions and login throttling when REDIS_URL is
// set and reachable, and process memory otherwise.
func sessionStores(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (session.Revoker, throttle.Limiter, *redis.Client) {

	memory := func() (session.Revoker, throttle.Limiter, *redis.Client) {
		return session.NewMemoryRevoker(), throttle.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow), nil
	}

	if cfg.RedisURL == "" {
		return memory()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, using in-memory session stores", "err", err)
		return memory()
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-memory session stores", "err", err)
		_ = rdb.Close()
		return memory()
	}

	limiter := throttle.NewRedisLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow, "login:")
	return session.NewRedisRevoker(rdb), limiter, rdb
}
