package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application: database coordinates, the HTTP port, the confirmation shared
// secret, the routing collaborator, and the scheduling policy knobs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ConfirmToken is the shared secret callers present to the confirmation
	// endpoint. ConfirmMaxAttempts bounds deadlock retries per request.
	ConfirmToken       string
	ConfirmMaxAttempts int

	// WarehouseAddress is the fixed origin for every travel-time estimate.
	WarehouseAddress string

	RoutingBaseURL string
	RoutingAPIKey  string
	RoutingTimeout time.Duration

	// Scheduling policy knobs: orders with at least LargeBatchThreshold
	// packages depart after LargeBatchLead, smaller ones after StandardLead.
	LargeBatchThreshold int
	LargeBatchLead      time.Duration
	StandardLead        time.Duration
}
