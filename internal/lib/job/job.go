// Package job provides background job processing using Asynq.
//
// Producers enqueue tasks with the asynq.Client; the asynq.Server runs the
// workers that consume them from Redis.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// alerts delivers low stock alerts; set by InitHandlers.
	alerts stockAlertSender
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights give critical tasks (stock alerts) the largest worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers the task handlers and starts the workers. It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskLowStock, j.handleLowStockTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}

	return nil
}

// EnqueueLowStockAlert schedules a low stock alert email.
func (j *JobService) EnqueueLowStockAlert(ctx context.Context, payload LowStockPayload) error {
	task, err := NewLowStockTask(payload)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", TaskLowStock, err)
	}

	j.logger.Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int("product_id", payload.ProductID).
		Msg("low stock alert enqueued")

	return nil
}

// Stop shuts the workers down and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
