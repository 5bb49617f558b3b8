package main

import (
	"context"
	"os/signal"
	"syscall"

	"hrms/internal/config"
	"hrms/internal/employee"
	"hrms/internal/logging"
	"hrms/internal/queue"
	"hrms/internal/store"
	"hrms/internal/worker"
)

// Worker consumes record-change events from Redis. With QUEUE_BACKEND=memory
// the API drains its own queue and this binary has nothing to read.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.QueueBackend != "redis" {
		log.Fatalf("worker needs QUEUE_BACKEND=redis, got %q", cfg.QueueBackend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()
	if !redisClient.Healthy(ctx) {
		log.WithField("addr", cfg.RedisAddr).Warn("redis not reachable, will keep retrying")
	}

	q := queue.NewRedisQueue(redisClient.Client, cfg.QueueKey)
	w := worker.New(q, employee.NewRepository(db.Client), log)
	if err := w.Run(ctx); err != nil {
		log.WithError(err).Fatal("queue consume init failed")
	}
}
