package order

import (
	"errors"
	"fmt"

	"comedor/domain/shared"
)

// Sentinel errors for errors.Is() checks. Constructors below attach the
// business context and the creation-point stack.
var (
	// ErrOrderNotFound: no order with the requested identifier.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyOrder: a creation request carried no line items.
	ErrEmptyOrder = errors.New("order must have at least one item")

	// ErrInvalidDeliveryMethod: delivery method is neither HomeDelivery nor PickUp.
	ErrInvalidDeliveryMethod = errors.New("invalid delivery method")

	// ErrMissingDeliveryAddress: home delivery requested without an address.
	ErrMissingDeliveryAddress = errors.New("delivery address is required for home delivery")

	// ErrInvalidQuantity: a line item quantity was zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInsufficientStock: requested quantity exceeds the product's stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStateTransition: the status change is not in the transition table.
	ErrInvalidStateTransition = errors.New("invalid order state transition")

	// ErrInvalidStatus: the status value is not part of the enumeration.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrNotPersisted: an operation needed a persisted identifier first.
	ErrNotPersisted = errors.New("order has not been persisted")
)

// NewOrderNotFoundError builds a not-found error for an order ID.
func NewOrderNotFoundError(orderID int64) error {
	return &orderError{
		sentinel: ErrOrderNotFound,
		message:  fmt.Sprintf("order %d not found", orderID),
		stack:    shared.CaptureStack(3),
	}
}

// NewEmptyOrderError builds the empty-order validation error.
func NewEmptyOrderError() error {
	return &orderError{
		sentinel: ErrEmptyOrder,
		field:    "items",
		message:  "order must have at least one item",
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidDeliveryMethodError reports an unrecognized delivery method value.
func NewInvalidDeliveryMethodError(value string) error {
	return &orderError{
		sentinel: ErrInvalidDeliveryMethod,
		field:    "delivery_method",
		message:  fmt.Sprintf("invalid delivery method %q: must be HomeDelivery or PickUp", value),
		stack:    shared.CaptureStack(3),
	}
}

// NewMissingDeliveryAddressError reports a home delivery without an address.
func NewMissingDeliveryAddressError() error {
	return &orderError{
		sentinel: ErrMissingDeliveryAddress,
		field:    "delivery_address_id",
		message:  "delivery address is required for home delivery",
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidQuantityError reports a non-positive quantity for a product line.
func NewInvalidQuantityError(productName string, quantity int) error {
	return &orderError{
		sentinel: ErrInvalidQuantity,
		field:    "quantity",
		message:  fmt.Sprintf("invalid quantity %d for %s: must be positive", quantity, productName),
		stack:    shared.CaptureStack(3),
	}
}

// NewInsufficientStockError reports both the requested and available
// quantities, so staff can see how far short the stock fell.
func NewInsufficientStockError(productName string, requested, available int) error {
	return &orderError{
		sentinel: ErrInsufficientStock,
		message:  fmt.Sprintf("insufficient stock for %s: requested %d, available %d", productName, requested, available),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidStateTransitionError names both ends of the rejected transition.
func NewInvalidStateTransitionError(current, target string) error {
	return &orderError{
		sentinel: ErrInvalidStateTransition,
		message:  fmt.Sprintf("cannot change order status from %s to %s", current, target),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidStatusError reports a status value outside the enumeration.
func NewInvalidStatusError(value string) error {
	return &orderError{
		sentinel: ErrInvalidStatus,
		field:    "status",
		message:  fmt.Sprintf("invalid order status %q", value),
		stack:    shared.CaptureStack(3),
	}
}

// NewNotPersistedError reports an order-number assignment before persistence.
func NewNotPersistedError() error {
	return &orderError{
		sentinel: ErrNotPersisted,
		message:  "cannot assign order number before the order is persisted",
		stack:    shared.CaptureStack(3),
	}
}

// orderError implements error, Unwrap and shared.Stacker.
type orderError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *orderError) Error() string {
	return e.message
}

func (e *orderError) Unwrap() error {
	return e.sentinel
}

func (e *orderError) Stack() []string {
	return shared.FormatStack(e.stack)
}
