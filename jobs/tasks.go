package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSummaryRefresh recomputes cached order summaries.
	TaskSummaryRefresh = "orders:summary_refresh"
)

// SummaryRefreshPayload selects which companies to refresh. A zero
// CompanyID refreshes every company present in the store.
type SummaryRefreshPayload struct {
	CompanyID int64 `json:"company_id"`
}

// NewSummaryRefreshTask constructs an Asynq task.
func NewSummaryRefreshTask(payload SummaryRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSummaryRefresh, data), nil
}
