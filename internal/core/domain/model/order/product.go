package order

import (
	"fmt"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/pkg/errs"
)

// Product is one ordered line item: a reference to the purchased product,
// the quantity, and the prices fixed at order time. Line items are created
// upstream and never mutated by the client.
type Product struct {
	productID kernel.ID
	name      string
	unitPrice int64
	quantity  int
	linePrice int64
}

// NewProduct creates a line item with validation.
//
// Parameters:
//   - productID: reference to the purchased product (must be valid)
//   - name: product display name as sent by the service
//   - unitPrice: price per unit at order time (must not be negative)
//   - quantity: number of units (must be positive)
//   - linePrice: total for the line at order time (must not be negative)
func NewProduct(productID kernel.ID, name string, unitPrice int64, quantity int, linePrice int64) (Product, error) {
	if err := productID.Validate(); err != nil {
		return Product{}, err
	}
	if quantity <= 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if linePrice < 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("line price is invalid",
			fmt.Errorf("%d is negative", linePrice))
	}

	return Product{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		linePrice: linePrice,
	}, nil
}

// ProductID returns the reference to the purchased product.
func (p Product) ProductID() kernel.ID {
	return p.productID
}

// Name returns the product display name.
func (p Product) Name() string {
	return p.name
}

// UnitPrice returns the per-unit price fixed at order time.
func (p Product) UnitPrice() int64 {
	return p.unitPrice
}

// Quantity returns the number of units ordered.
func (p Product) Quantity() int {
	return p.quantity
}

// LinePrice returns the total price of the line fixed at order time.
func (p Product) LinePrice() int64 {
	return p.linePrice
}
