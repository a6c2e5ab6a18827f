package cron

import (
	"context"
	"fmt"
	"time"

	"eventhub/config"
	"eventhub/models"
	"eventhub/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Prewarmer fills the location caches. *location.OverpassClient satisfies it.
type Prewarmer interface {
	Prewarm(ctx context.Context)
	FetchAreas(ctx context.Context, cityName string) []models.Place
}

// PrewarmWorker owns the asynq scheduler that enqueues prewarm tasks and the
// server that runs them.
type PrewarmWorker struct {
	scheduler *asynq.Scheduler
	server    *asynq.Server
	stop      context.CancelFunc
	logger    *zap.Logger
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPrewarmWorker registers schedule and starts the scheduler and worker in background.
// An empty schedule disables prewarming and returns a nil worker.
func InitPrewarmWorker(schedule string, p Prewarmer, logger *zap.Logger) (*PrewarmWorker, error) {
	if schedule == "" {
		return nil, nil
	}

	task, err := tasks.NewPrewarmTask(tasks.PrewarmPayload{})
	if err != nil {
		return nil, err
	}
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register(schedule, task, asynq.MaxRetry(1), asynq.Timeout(10*time.Minute)); err != nil {
		return nil, fmt.Errorf("invalid prewarm schedule %q: %w", schedule, err)
	}

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeLocationsPrewarm, HandlePrewarmTask(p, logger))

	ctx, stop := context.WithCancel(context.Background())
	w := &PrewarmWorker{scheduler: scheduler, server: srv, stop: stop, logger: logger}

	go monitorRedisConnection(ctx, logger)
	go startWithRetry(ctx, "worker", func() error { return srv.Start(mux) }, logger)
	go startWithRetry(ctx, "scheduler", scheduler.Start, logger)

	logger.Info("Location prewarm scheduled", zap.String("schedule", schedule))
	return w, nil
}

// startWithRetry retries start with a linear backoff until it succeeds or attempts run out.
func startWithRetry(ctx context.Context, name string, start func() error, logger *zap.Logger) {
	const maxAttempts = 5

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := start()
		if err == nil {
			logger.Info("Prewarm component started", zap.String("component", name))
			return
		}
		logger.Warn("Prewarm component failed to start",
			zap.String("component", name),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt*2) * time.Second):
		}
	}
	logger.Error("Prewarm component gave up; location caches will fill on demand", zap.String("component", name))
}

// HandlePrewarmTask warms the requested cities, or everything when none are named.
func HandlePrewarmTask(p Prewarmer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		payload, err := tasks.ParsePrewarmPayload(task)
		if err != nil {
			logger.Error("Invalid prewarm payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		start := time.Now()
		if len(payload.Cities) == 0 {
			p.Prewarm(ctx)
		} else {
			for _, city := range payload.Cities {
				p.FetchAreas(ctx, city)
			}
		}
		logger.Info("Location caches prewarmed",
			zap.Strings("cities", payload.Cities),
			zap.Duration("took", time.Since(start)),
		)
		return ctx.Err()
	}
}

// monitorRedisConnection pings the queue Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Prewarm queue Redis unreachable", zap.Error(err))
			}
		}
	}
}

// Shutdown stops scheduling, waits for a running prewarm to finish and closes connections.
func (w *PrewarmWorker) Shutdown() {
	if w == nil {
		return
	}
	w.stop()
	w.scheduler.Shutdown()
	w.server.Shutdown()
}
