// Package product contains the Product aggregate: a sellable item from the
// catalog with its unit price and unit of measure. Products carry an active
// flag instead of being deleted, so historical order lines keep a valid
// reference.
package product
