package cron

import (
	"context"
	"log"
	"time"

	"hostnhome/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeQuotationExpire = "quotation:expire"
	defaultExpiryCron   = "@every 1h"
)

// QuotationExpirer is the part of the quotation service the worker drives.
type QuotationExpirer interface {
	ExpireStale(ctx context.Context) (int, error)
}

// ExpiryWorker runs the periodic quotation expiry task on asynq.
type ExpiryWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	cancel    context.CancelFunc
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitExpiryWorker registers the expiry schedule and runs the async worker in background.
func InitExpiryWorker(svc QuotationExpirer) *ExpiryWorker {
	opts := redisOpts()

	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeQuotationExpire, handleExpireTask(svc))

	scheduler := asynq.NewScheduler(opts, &asynq.SchedulerOpts{Location: time.UTC})
	cronSpec := config.AppConfig.QuotationExpiryCron
	if cronSpec == "" {
		cronSpec = defaultExpiryCron
	}
	if _, err := scheduler.Register(cronSpec, asynq.NewTask(TypeQuotationExpire, nil), asynq.MaxRetry(3)); err != nil {
		log.Fatalf("[ExpiryWorker] invalid QUOTATION_EXPIRY_CRON %q: %v", cronSpec, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &ExpiryWorker{server: srv, scheduler: scheduler, cancel: cancel}

	go monitorRedisConnection(ctx)

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				log.Printf("[ExpiryWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
				continue
			}
			break
		}

		if err := scheduler.Start(); err != nil {
			log.Printf("[ExpiryWorker] ❌ Failed to start scheduler: %v", err)
		}
	}()

	return w
}

// Shutdown stops the scheduler and waits for in-flight tasks.
func (w *ExpiryWorker) Shutdown() {
	w.cancel()
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func handleExpireTask(svc QuotationExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := svc.ExpireStale(ctx)
		if err != nil {
			log.Printf("[ExpiryHandler] ❌ Failed to expire quotations: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[ExpiryHandler] ⏰ Expired %d quotation(s)", n)
		}
		return nil
	}
}

// monitorRedisConnection pings the queue DB periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("[ExpiryWorker] ⚠️ Redis connection lost: %v", err)
			}
		}
	}
}
