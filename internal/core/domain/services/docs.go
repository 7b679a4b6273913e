// Package services contains the domain services of the rental core: the
// pure late-fee calculator, the packing-time discount engine, the coupon
// ledger and the regional-program eligibility window. Services operate on
// already-loaded aggregates and never touch persistence themselves.
package services
