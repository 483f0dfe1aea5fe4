package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type stockAlertSender interface {
	SendLowStockAlert(to string, alert email.LowStockAlert) error
}

// InitHandlers wires the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.alerts = email.NewClient(cfg, logger)
}

func (j *JobService) handleLowStockTask(ctx context.Context, t *asynq.Task) error {
	var p LowStockPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload will never succeed; skip retries.
		return fmt.Errorf("failed to unmarshal low stock payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskLowStock).
		Str("to", p.To).
		Int("product_id", p.ProductID).
		Logger()

	logger.Info().Msg("processing low stock alert task")

	err := j.alerts.SendLowStockAlert(p.To, email.LowStockAlert{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Threshold:   p.Threshold,
		AreaID:      p.AreaID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send low stock alert")
		return err
	}

	logger.Info().Msg("sent low stock alert")

	return nil
}
