package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskLowStock is the task type for low stock alert emails.
const TaskLowStock = "product:low_stock"

// LowStockPayload is the JSON payload of a TaskLowStock task.
type LowStockPayload struct {
	To          string `json:"to"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
	AreaID      int    `json:"area_id"`
}

// NewLowStockTask builds a TaskLowStock task on the critical queue.
func NewLowStockTask(p LowStockPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskLowStock,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
