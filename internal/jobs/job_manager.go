package jobs

import (
	"fmt"
	"log/slog"

	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAlertJob *LowStockAlertJob
	deliveryDelayJob *DeliveryDelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lowStockHandler queries.GetLowStockLotsQueryHandler,
	markDelayedHandler commands.MarkDelayedDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAlertJob: NewLowStockAlertJob(lowStockHandler, logger),
		deliveryDelayJob: NewDeliveryDelayJob(markDelayedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	if err := jm.deliveryDelayJob.Start(); err != nil {
		jm.lowStockAlertJob.Stop()
		return fmt.Errorf("failed to start delivery delay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryDelayJob.Stop()
	jm.lowStockAlertJob.Stop()
}
