// Package order contains the rental order aggregate: the status state
// machine, the order line items and every validated lifecycle mutation.
// All financial computation over the aggregate lives in the domain services;
// this package only guarantees that the aggregate cannot reach an illegal
// state.
package order
