package cron

import (
	"context"
	"log"
	"time"

	"sufra/config"
	branchRepo "sufra/database/repository/branch"

	"github.com/hibiken/asynq"
)

const TypeRecyclePurge = "recycle:purge"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPurgeWorker runs the recycle-bin purge worker in background: a daily
// scheduled task deletes branches whose retention window has passed.
func InitPurgeWorker(repo branchRepo.BranchRepository) {
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
	mux.HandleFunc(TypeRecyclePurge, handlePurgeTask(repo))

	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PurgeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PurgeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runPurgeScheduler()
}

// runPurgeScheduler enqueues the purge task once a day.
func runPurgeScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeRecyclePurge, nil)); err != nil {
		log.Printf("[PurgeWorker] failed to register schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[PurgeWorker] scheduler stopped: %v", err)
	}
}

func handlePurgeTask(repo branchRepo.BranchRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		retention := time.Duration(config.AppConfig.RecycleRetentionDays) * 24 * time.Hour
		cutoff := time.Now().Add(-retention)

		n, err := repo.Purge(cutoff)
		if err != nil {
			log.Printf("[PurgeHandler] purge failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[PurgeHandler] purged %d expired branches from the recycle bin", n)
		}
		return nil
	}
}
