// Package order provides domain entities and business logic for the order
// lifecycle as seen by a shipper. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Product, Recipient, Payment: immutable value objects set upstream at order time
//
// Key business rules:
//   - Orders must have a valid identifier issued by the remote service
//   - Order status follows a defined workflow: New -> Claimed -> Completed | Cancelled
//   - Completed and Cancelled are terminal; such orders are immutable
//   - Exactly one shipper may hold an order; only the assigned shipper can
//     advance it past Claimed
//   - Unrecognized upstream status strings map to Unknown and are surfaced,
//     never dropped
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
