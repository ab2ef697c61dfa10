package ports

import (
	"context"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
)

// RouteEstimator estimates driving time between two addresses. The delivery
// scheduler turns the estimate into an arrival instant; a failed estimate
// aborts the confirmation that requested it.
type RouteEstimator interface {
	// EstimateTravelTime returns the expected driving duration from origin
	// to destination when departing at the given instant.
	EstimateTravelTime(ctx context.Context, origin, destination kernel.Address, departAt time.Time) (time.Duration, error)
}
