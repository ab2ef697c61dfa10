package jobs

import (
	"context"
	"log/slog"
	"time"

	"aquaflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDelayJob periodically flags en-route trips past their arrival
// estimate as delayed so they stand out in the active deliveries view.
type DeliveryDelayJob struct {
	handler commands.MarkDelayedDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDelayJob creates a job that sweeps active trips every five minutes.
func NewDeliveryDelayJob(handler commands.MarkDelayedDeliveriesCommandHandler, logger *slog.Logger) *DeliveryDelayJob {
	return &DeliveryDelayJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_delay_job"),
	}
}

// Start begins the periodic delay sweep.
func (j *DeliveryDelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMarkDelayedDeliveriesCommand(time.Now())

		delayed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery delay sweep failed", "error", err)
			return
		}

		if delayed > 0 {
			j.logger.WarnContext(ctx, "Trips marked delayed", "count", delayed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery delay job started (running every five minutes)")
	return nil
}

// Stop stops the periodic delay sweep.
func (j *DeliveryDelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery delay job stopped")
}
