// Package services provides domain services for logic that doesn't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - StatsCalculator: derives dashboard OrderStats from partition sizes
//   - ActionPlanner: computes the lifecycle transitions legal for a given
//     (order status, assignment, shipper) triple
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
