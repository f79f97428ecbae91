/*
Package order holds the Order aggregate: line items, the totals arithmetic
(subtotal, 18% consumption tax, total), the status machine and the order
number. The aggregate performs no I/O; stock availability is passed in by the
caller, and persistence is the repository's job.

Concurrency note: orders carry no optimistic-lock token. Stock integrity
under concurrent placements against the same product relies entirely on the
database transaction isolation around the placement workflow.
*/
package order

import (
	"fmt"
	"strings"
	"time"

	"comedor/domain/shared"

	"github.com/shopspring/decimal"
)

// TaxRate is the consumption tax (ITBIS) applied to every order's subtotal.
var TaxRate = decimal.New(18, -2) // 0.18

// Status enumerates the order lifecycle states.
type Status string

const (
	StatusReceived      Status = "Received"
	StatusInPreparation Status = "InPreparation"
	StatusOnTheWay      Status = "OnTheWay"
	StatusDelivered     Status = "Delivered"
	StatusCancelled     Status = "Cancelled"
)

// transitions is the explicit state table: each non-terminal status may move
// to any status including itself (staff can skip or walk back intermediate
// steps, and re-submitting the current status is a harmless no-op);
// Delivered and Cancelled are terminal and map to nothing.
var transitions = map[Status][]Status{
	StatusReceived:      {StatusReceived, StatusInPreparation, StatusOnTheWay, StatusDelivered, StatusCancelled},
	StatusInPreparation: {StatusReceived, StatusInPreparation, StatusOnTheWay, StatusDelivered, StatusCancelled},
	StatusOnTheWay:      {StatusReceived, StatusInPreparation, StatusOnTheWay, StatusDelivered, StatusCancelled},
	StatusDelivered:     {},
	StatusCancelled:     {},
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseStatus matches a status value case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, known := range []Status{StatusReceived, StatusInPreparation, StatusOnTheWay, StatusDelivered, StatusCancelled} {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", NewInvalidStatusError(s)
}

// DeliveryMethod enumerates how an order reaches the customer.
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "HomeDelivery"
	DeliveryPickUp DeliveryMethod = "PickUp"
)

// ParseDeliveryMethod matches a delivery method case-insensitively.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch {
	case strings.EqualFold(s, string(DeliveryHome)):
		return DeliveryHome, nil
	case strings.EqualFold(s, string(DeliveryPickUp)):
		return DeliveryPickUp, nil
	default:
		return "", NewInvalidDeliveryMethodError(s)
	}
}

// Order is the aggregate root. All modifications to the order and its lines
// go through its methods; fields stay private so invariants (total ==
// subtotal + tax, terminal statuses are final) cannot be bypassed.
type Order struct {
	id             int64
	userID         int64
	number         string
	placedAt       time.Time
	status         Status
	deliveryMethod DeliveryMethod
	addressID      *int64
	notes          string
	lines          []LineItem
	subtotal       shared.Money
	tax            shared.Money
	total          shared.Money
	createdAt      time.Time
	updatedAt      time.Time
}

// LineItem is one product-quantity entry within an order. The unit price and
// product name are captured at creation time and stay fixed regardless of
// later catalog changes.
type LineItem struct {
	id          int64
	productID   int64
	productName string
	quantity    int
	unitPrice   shared.Money
	subtotal    shared.Money
	notes       string
}

// NewOrder creates an order in Received status. A home delivery order must
// reference a delivery address.
func NewOrder(userID int64, method DeliveryMethod, addressID *int64, notes string) (*Order, error) {
	if method == DeliveryHome && addressID == nil {
		return nil, NewMissingDeliveryAddressError()
	}

	now := time.Now().UTC()
	return &Order{
		userID:         userID,
		placedAt:       now,
		status:         StatusReceived,
		deliveryMethod: method,
		addressID:      addressID,
		notes:          notes,
		subtotal:       shared.ZeroMoney(),
		tax:            shared.ZeroMoney(),
		total:          shared.ZeroMoney(),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// AddLine validates quantity and stock, appends a line capturing the
// product's current price, and recomputes totals. availableStock is the
// product's stock as the caller last observed it; the aggregate does not
// reach into the catalog itself.
func (o *Order) AddLine(productID int64, productName string, quantity int, unitPrice shared.Money, availableStock int, notes string) error {
	if quantity <= 0 {
		return NewInvalidQuantityError(productName, quantity)
	}
	if availableStock < quantity {
		return NewInsufficientStockError(productName, quantity, availableStock)
	}

	o.lines = append(o.lines, LineItem{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		subtotal:    unitPrice.MulInt(quantity),
		notes:       notes,
	})
	o.recomputeTotals()
	o.updatedAt = time.Now().UTC()
	return nil
}

// recomputeTotals reestablishes the totals invariant from the current lines:
// subtotal is the sum of line subtotals, tax is 18% of the subtotal rounded
// to currency precision, total is their sum.
func (o *Order) recomputeTotals() {
	subtotal := shared.ZeroMoney()
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.subtotal)
	}
	o.subtotal = subtotal
	o.tax = subtotal.MulRate(TaxRate)
	o.total = subtotal.Add(o.tax)
}

// ChangeStatus moves the order to next according to the transition table.
// Terminal statuses admit no transition at all.
func (o *Order) ChangeStatus(next Status) error {
	for _, allowed := range transitions[o.status] {
		if next == allowed {
			o.status = next
			o.updatedAt = time.Now().UTC()
			return nil
		}
	}
	return NewInvalidStateTransitionError(string(o.status), string(next))
}

// AssignNumber derives the human-readable order number from the creation
// year and the persisted identifier, e.g. "ORD-2025-000042". The order must
// have been persisted first; an unassigned identifier would produce a
// meaningless number.
func (o *Order) AssignNumber() error {
	if o.id == 0 {
		return NewNotPersistedError()
	}
	o.number = fmt.Sprintf("ORD-%04d-%06d", o.placedAt.Year(), o.id)
	o.updatedAt = time.Now().UTC()
	return nil
}

// SetID is called by the repository after the insert assigned an identifier.
func (o *Order) SetID(id int64) {
	o.id = id
}

func (o *Order) ID() int64                      { return o.id }
func (o *Order) UserID() int64                  { return o.userID }
func (o *Order) Number() string                 { return o.number }
func (o *Order) PlacedAt() time.Time            { return o.placedAt }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryMethod() DeliveryMethod { return o.deliveryMethod }
func (o *Order) AddressID() *int64              { return o.addressID }
func (o *Order) Notes() string                  { return o.notes }
func (o *Order) Subtotal() shared.Money         { return o.subtotal }
func (o *Order) Tax() shared.Money              { return o.tax }
func (o *Order) Total() shared.Money            { return o.total }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }

// Lines returns a copy so callers cannot mutate the aggregate's internals.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (l LineItem) ID() int64               { return l.id }
func (l LineItem) ProductID() int64        { return l.productID }
func (l LineItem) ProductName() string     { return l.productName }
func (l LineItem) Quantity() int           { return l.quantity }
func (l LineItem) UnitPrice() shared.Money { return l.unitPrice }
func (l LineItem) Subtotal() shared.Money  { return l.subtotal }
func (l LineItem) Notes() string           { return l.notes }

// ReconstructionDTO rebuilds an Order from storage. Repository use only;
// application code must go through NewOrder.
type ReconstructionDTO struct {
	ID             int64
	UserID         int64
	Number         string
	PlacedAt       time.Time
	Status         Status
	DeliveryMethod DeliveryMethod
	AddressID      *int64
	Notes          string
	Lines          []LineItem
	Subtotal       shared.Money
	Tax            shared.Money
	Total          shared.Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RebuildFromDTO reconstructs the aggregate without touching invariants;
// the stored totals are trusted as written.
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:             dto.ID,
		userID:         dto.UserID,
		number:         dto.Number,
		placedAt:       dto.PlacedAt,
		status:         dto.Status,
		deliveryMethod: dto.DeliveryMethod,
		addressID:      dto.AddressID,
		notes:          dto.Notes,
		lines:          dto.Lines,
		subtotal:       dto.Subtotal,
		tax:            dto.Tax,
		total:          dto.Total,
		createdAt:      dto.CreatedAt,
		updatedAt:      dto.UpdatedAt,
	}
}

// LineReconstructionDTO rebuilds a LineItem from storage.
type LineReconstructionDTO struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   shared.Money
	Subtotal    shared.Money
	Notes       string
}

// RebuildLineFromDTO reconstructs a line item from storage.
func RebuildLineFromDTO(dto LineReconstructionDTO) LineItem {
	return LineItem{
		id:          dto.ID,
		productID:   dto.ProductID,
		productName: dto.ProductName,
		quantity:    dto.Quantity,
		unitPrice:   dto.UnitPrice,
		subtotal:    dto.Subtotal,
		notes:       dto.Notes,
	}
}
