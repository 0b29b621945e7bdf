package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"tidybee/config"
	"tidybee/services/pricing"
)

const TypeCatalogRefresh = "pricing:catalog:refresh"

// InitCatalogWorker runs the async worker and its periodic scheduler in the
// background. The worker re-reads the active rule/bundle catalog and rewrites
// the Redis snapshot so quote traffic mostly hits warm cache.
func InitCatalogWorker(catalog *pricing.CachedCatalog) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCatalogRefresh, handleCatalogRefresh(catalog))

	go func() {
		log.Println("[CatalogWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CatalogWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CatalogWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go startRefreshScheduler(redisOpts)
}

func handleCatalogRefresh(catalog *pricing.CachedCatalog) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		snapshot, err := catalog.Refresh()
		if err != nil {
			// Leave the previous snapshot in place; the next tick retries.
			log.Printf("[CatalogWorker] Catalog refresh failed: %v", err)
			return err
		}
		log.Printf("[CatalogWorker] Catalog refreshed: %d rules, %d bundles", len(snapshot.Rules), len(snapshot.Bundles))
		return nil
	}
}

// startRefreshScheduler enqueues a refresh task on a fixed interval.
func startRefreshScheduler(redisOpts asynq.RedisClientOpt) {
	minutes := config.AppConfig.CatalogRefreshMinutes
	if minutes <= 0 {
		minutes = 5
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	spec := fmt.Sprintf("@every %dm", minutes)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeCatalogRefresh, nil)); err != nil {
		log.Printf("[CatalogWorker] Failed to register refresh schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[CatalogWorker] Scheduler stopped: %v", err)
	}
}
