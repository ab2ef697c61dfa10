// Package inventory contains the Lot aggregate: a trackable batch of stock
// for one product with its own quantity, reorder point and optional expiry.
// The quantity-never-negative invariant is enforced here; the confirmation
// workflow holds row locks while calling Decrement so concurrent
// confirmations cannot oversell.
package inventory
