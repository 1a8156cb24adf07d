package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/pedidos-fdv/pedidos-fdv/internal/summary"
)

// SummaryRefreshJob keeps the cached dashboard summaries warm so the first
// page load after a quiet period does not pay for the aggregate queries.
type SummaryRefreshJob struct {
	Summaries *summary.Service
	Logger    *slog.Logger
}

// NewSummaryRefreshJob wires dependencies for the refresh handler.
func NewSummaryRefreshJob(summaries *summary.Service, logger *slog.Logger) *SummaryRefreshJob {
	return &SummaryRefreshJob{Summaries: summaries, Logger: logger}
}

// Handle processes summary refresh tasks.
func (j *SummaryRefreshJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Summaries == nil {
		return errors.New("summary refresh: handler not configured")
	}
	var payload SummaryRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	if payload.CompanyID > 0 {
		if _, err := j.Summaries.Refresh(ctx, payload.CompanyID); err != nil {
			j.logger().Error("summary refresh", slog.Int64("company_id", payload.CompanyID), slog.Any("error", err))
			return err
		}
		return nil
	}

	if err := j.Summaries.RefreshAll(ctx); err != nil {
		j.logger().Error("summary refresh all", slog.Any("error", err))
		return err
	}
	j.logger().Info("order summaries refreshed")
	return nil
}

func (j *SummaryRefreshJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
