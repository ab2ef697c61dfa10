// Package order contains the Order aggregate root and its owned line items.
// An order is created pending with immutable, price-snapshotted lines and a
// denormalized total; it transitions to confirmed exactly once through the
// confirmation workflow, or to cancelled. Delivered is reached only from
// confirmed, when the courier completes the trip.
package order
