// Package delivery contains the Delivery aggregate: the scheduled trip for
// one confirmed order. A delivery is created only by the confirmation
// workflow, carries the departure and estimated-arrival instants, and is
// bound to exactly one courier.
package delivery
