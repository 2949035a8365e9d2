package order

import (
	"errors"

	"shipper/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the RestoreOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrNotAssignedShipper is returned when a shipper attempts to advance an
	// order that is assigned to someone else (or not assigned at all).
	ErrNotAssignedShipper = errors.New("order is not assigned to this shipper")
)

// Order represents a delivery order as seen by the shipper client. It is the
// aggregate root that manages the order lifecycle from claim through the
// delivery outcome.
//
// Orders are created upstream by the shop; the client only ingests them and
// advances their lifecycle. Order follows these invariants:
//   - Must have a valid identifier issued by the remote service
//   - Commercial and temporal fields are immutable once ingested
//   - Status transitions follow the state machine in Status
//   - At most one shipper holds an order; only the assigned shipper may
//     advance it past Claimed
//   - Can only be created through the RestoreOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the identifier issued by the remote order service
	id kernel.ID

	// code is the human-readable order code shown to customers and shippers
	code string

	// recipient holds the delivery destination details
	recipient Recipient

	// payment holds the commercial totals fixed at order time
	payment Payment

	// products are the ordered line items
	products []Product

	// timestamps are display/sort-only temporal fields
	timestamps Timestamps

	// status is the current state in the order lifecycle
	status Status

	// shipperID is the assigned shipper's ID (nil if unassigned)
	shipperID *kernel.ID

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder reconstructs an Order from data received from the remote
// service. This is the only way to create a valid Order.
//
// Parameters:
//   - id: identifier issued by the remote service (must be valid)
//   - code: human-readable order code
//   - recipient: delivery destination details
//   - payment: commercial totals
//   - products: ordered line items (may be empty; never nil after restore)
//   - timestamps: display-only temporal fields
//   - status: normalized lifecycle status (Unknown is allowed and surfaced)
//   - shipperID: assigned shipper, nil when unassigned
//
// Returns:
//   - *Order: the restored order if all validations pass
//   - error: validation error if the identifier is invalid or the status and
//     assignment are inconsistent (a New order carrying an assignment)
func RestoreOrder(
	id kernel.ID,
	code string,
	recipient Recipient,
	payment Payment,
	products []Product,
	timestamps Timestamps,
	status Status,
	shipperID *kernel.ID,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if shipperID != nil {
		if err := shipperID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := status.ValidateCanHaveShipper(shipperID != nil); err != nil {
		return nil, err
	}

	if products == nil {
		products = []Product{}
	}

	return &Order{
		id:            id,
		code:          code,
		recipient:     recipient,
		payment:       payment,
		products:      products,
		timestamps:    timestamps,
		status:        status,
		shipperID:     shipperID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// RestoreOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// Recipient returns the delivery destination details.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Payment returns the commercial totals of the order.
func (o *Order) Payment() Payment {
	return o.payment
}

// Products returns a copy of the ordered line items.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)
	return products
}

// Timestamps returns the display-only temporal fields.
func (o *Order) Timestamps() Timestamps {
	return o.timestamps
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Shipper returns the assigned shipper's ID.
// Returns nil if no shipper is assigned.
func (o *Order) Shipper() *kernel.ID {
	return o.shipperID
}

// IsAssignedTo reports whether the order is assigned to the given shipper.
func (o *Order) IsAssignedTo(shipperID kernel.ID) bool {
	return o.shipperID != nil && o.shipperID.IsEqual(shipperID)
}

// Claim assigns the order to a shipper and updates the status to Claimed.
//
// This method enforces the following business rules:
//   - The shipper ID must be valid
//   - The order must be in New status and unassigned
//
// After a successful claim, the order's status becomes Claimed and Shipper()
// returns the claiming shipper's ID. Whether the claim sticks is decided by
// the remote service; callers apply this optimistically and roll back via a
// snapshot when the service rejects the claim.
func (o *Order) Claim(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	if o.shipperID != nil {
		return ErrNotAssignedShipper
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipperID = &shipperID
	return nil
}

// Complete marks the order as delivered.
//
// This method enforces the following business rules:
//   - The shipper ID must be valid
//   - The order must be in Claimed status
//   - Only the assigned shipper may complete the order
//   - Completed is a terminal state with no further transitions
func (o *Order) Complete(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if !o.IsAssignedTo(shipperID) {
		return ErrNotAssignedShipper
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
//
// This method enforces the following business rules:
//   - The shipper ID must be valid
//   - The order must be in New or Claimed status
//   - A Claimed order may only be cancelled by its assigned shipper
//   - Cancelled is a terminal state with no further transitions
//
// The assignment is kept on cancellation so the order still appears in the
// acting shipper's cancelled partition.
func (o *Order) Cancel(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.status == Claimed && !o.IsAssignedTo(shipperID) {
		return ErrNotAssignedShipper
	}

	o.status = newStatus
	return nil
}

// Snapshot returns a deep copy of the order. Snapshots are taken before an
// optimistic transition is applied so the pre-call state can be restored when
// the remote service rejects the operation.
func (o *Order) Snapshot() *Order {
	products := make([]Product, len(o.products))
	copy(products, o.products)

	var shipperID *kernel.ID
	if o.shipperID != nil {
		id := *o.shipperID
		shipperID = &id
	}

	return &Order{
		id:            o.id,
		code:          o.code,
		recipient:     o.recipient,
		payment:       o.payment,
		products:      products,
		timestamps:    o.timestamps,
		status:        o.status,
		shipperID:     shipperID,
		isConstructed: o.isConstructed,
	}
}

// Restore resets the order's mutable state from a snapshot taken earlier.
// Only status and assignment are mutable, so only they are restored.
func (o *Order) Restore(snapshot *Order) {
	if snapshot == nil {
		return
	}
	o.status = snapshot.status
	o.shipperID = snapshot.shipperID
}
