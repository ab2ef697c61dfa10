// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - DeliveryScheduler: builds the delivery trip for an order being
//     confirmed, computing the departure window from the order size and
//     binding an available courier.
package services
