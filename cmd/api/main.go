package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hrms/internal/attendance"
	"hrms/internal/config"
	"hrms/internal/employee"
	"hrms/internal/handler"
	"hrms/internal/httpmiddleware"
	"hrms/internal/logging"
	"hrms/internal/queue"
	"hrms/internal/store"
	"hrms/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg, log); err != nil {
		log.WithError(err).Fatal("http server failed")
	}
}

func runHTTP(cfg config.App, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.WithField("driver", cfg.DBDriver).Info("database ready")

	var redisClient *store.Redis
	if cfg.UsesRedis() {
		redisClient = store.NewRedis(cfg.RedisAddr)
		defer redisClient.Close()
		if !redisClient.Healthy(ctx) {
			log.WithField("addr", cfg.RedisAddr).Warn("redis not reachable")
		}
	}

	employeeRepo := employee.NewRepository(db.Client)
	employees := employee.NewService(employeeRepo)
	att := attendance.NewService(attendance.NewRepository(db.Client))

	var q queue.Queue
	if cfg.QueueBackend == "redis" {
		q = queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	} else {
		// nobody else can read an in-process queue, so drain it here
		mem := queue.NewInMemory(256)
		q = mem
		go func() {
			_ = worker.New(mem, employeeRepo, log.WithField("component", "worker")).Run(ctx)
		}()
	}

	var limiter httpmiddleware.Limiter
	if cfg.RateLimitBackend == "redis" {
		limiter = httpmiddleware.NewRedisWindow(redisClient.Client, "hrms:ratelimit", cfg.RateLimitPerMin)
	} else {
		limiter = httpmiddleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
	}

	r := handler.NewRouter(handler.Deps{
		Employees:  employees,
		Attendance: att,
		DB:         db,
		Redis:      redisClient,
		Events:     q,
		Limiter:    limiter,
		Log:        log,
		Production: cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on http://%s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server forced shutdown")
	}

	log.Info("Server exited")
	return nil
}
