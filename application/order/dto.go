package order

import "time"

// PlaceOrderRequest is the creation payload. Items are validated by the
// service, not by binding tags, so the workflow's error ordering (user
// checks before the empty-order check) is preserved.
type PlaceOrderRequest struct {
	UserID            int64              `json:"user_id" binding:"required"`
	DeliveryMethod    string             `json:"delivery_method" binding:"required"`
	DeliveryAddressID *int64             `json:"delivery_address_id"`
	Notes             string             `json:"notes"`
	Items             []OrderLineRequest `json:"items"`
}

// OrderLineRequest is one requested product line.
type OrderLineRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// UpdateStatusRequest carries the target status as free text; matching is
// case-insensitive.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse is the hydrated order returned by every operation.
// Monetary fields are fixed-precision decimal strings.
type OrderResponse struct {
	ID              int64               `json:"id"`
	Number          string              `json:"number"`
	UserID          int64               `json:"user_id"`
	CustomerName    string              `json:"customer_name"`
	Status          string              `json:"status"`
	DeliveryMethod  string              `json:"delivery_method"`
	DeliveryAddress *AddressResponse    `json:"delivery_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	PlacedAt        time.Time           `json:"placed_at"`
	Subtotal        string              `json:"subtotal"`
	Tax             string              `json:"tax"`
	Total           string              `json:"total"`
	Lines           []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is one line of the hydrated order.
type OrderLineResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
	Notes       string `json:"notes,omitempty"`
}

// AddressResponse is the delivery address attached to a home delivery order.
type AddressResponse struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Reference string `json:"reference,omitempty"`
}
