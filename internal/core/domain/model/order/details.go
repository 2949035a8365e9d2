package order

import (
	"fmt"
	"strings"
	"time"

	"shipper/internal/pkg/errs"
)

// Payment methods used by the upstream shop. Anything the client does not
// recognize is carried through verbatim for display.
const (
	PaymentCashOnDelivery = "cod"
	PaymentOnline         = "online"
)

// Recipient holds the delivery destination details of an order. All fields
// are set upstream when the order is placed and are immutable here.
type Recipient struct {
	fullName string
	address  string
	phone    string
}

// NewRecipient creates the recipient details for an order. Values are carried
// as received; surrounding whitespace is trimmed.
func NewRecipient(fullName, address, phone string) Recipient {
	return Recipient{
		fullName: strings.TrimSpace(fullName),
		address:  strings.TrimSpace(address),
		phone:    strings.TrimSpace(phone),
	}
}

// FullName returns the recipient's name.
func (r Recipient) FullName() string {
	return r.fullName
}

// Address returns the delivery address.
func (r Recipient) Address() string {
	return r.address
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Payment holds the commercial totals of an order, fixed at order time.
type Payment struct {
	method      string
	deliveryFee int64
	totalPrice  int64
}

// NewPayment creates the payment details for an order.
// Fee and total must not be negative.
func NewPayment(method string, deliveryFee, totalPrice int64) (Payment, error) {
	if deliveryFee < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	if totalPrice < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%d is negative", totalPrice))
	}

	return Payment{
		method:      strings.ToLower(strings.TrimSpace(method)),
		deliveryFee: deliveryFee,
		totalPrice:  totalPrice,
	}, nil
}

// Method returns the payment method ("cod", "online", or an upstream value
// the client does not recognize).
func (p Payment) Method() string {
	return p.method
}

// DeliveryFee returns the delivery fee.
func (p Payment) DeliveryFee() int64 {
	return p.deliveryFee
}

// TotalPrice returns the order total.
func (p Payment) TotalPrice() int64 {
	return p.totalPrice
}

// Timestamps holds the temporal fields of an order. They are used only for
// display and sort order, never for transition logic.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	OrderDate time.Time
}
