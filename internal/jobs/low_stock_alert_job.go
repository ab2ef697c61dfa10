package jobs

import (
	"context"
	"log/slog"

	"aquaflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically reports lots that have fallen to their
// reorder point. The output is a structured log line per lot; operators
// watch these to plan production runs.
type LowStockAlertJob struct {
	handler queries.GetLowStockLotsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates a job that checks stock levels every five minutes.
func NewLowStockAlertJob(handler queries.GetLowStockLotsQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the periodic stock check.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		lots, err := j.handler.Handle(ctx, queries.NewGetLowStockLotsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock check failed", "error", err)
			return
		}

		for _, lot := range lots {
			j.logger.WarnContext(ctx, "Lot at or below reorder point",
				"lot_number", lot.LotNumber,
				"product", lot.ProductName,
				"quantity", lot.Quantity,
				"reorder_point", lot.ReorderPoint,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every five minutes)")
	return nil
}

// Stop stops the periodic stock check.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
