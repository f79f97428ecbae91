// Package po holds persistence objects: plain structs for database mapping
// only, with no business logic and no GORM associations.
package po

import (
	"time"

	"comedor/domain/order"
	"comedor/domain/shared"

	"github.com/shopspring/decimal"
)

// OrderPO maps the orders table.
type OrderPO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	UserID         int64           `gorm:"index;not null"` // ID only, no association
	Number         string          `gorm:"size:20;uniqueIndex"`
	PlacedAt       time.Time       `gorm:"index;not null"`
	Status         string          `gorm:"size:20;index;not null"`
	DeliveryMethod string          `gorm:"size:20;not null"`
	AddressID      *int64          `gorm:""`
	Notes          string          `gorm:"size:500"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

// TableName names the table.
func (OrderPO) TableName() string {
	return "orders"
}

// OrderLinePO maps the order_lines table.
type OrderLinePO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"index;not null"` // ID only, no association
	ProductID   int64           `gorm:"not null"`
	ProductName string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes       string          `gorm:"size:500"`
}

// TableName names the table.
func (OrderLinePO) TableName() string {
	return "order_lines"
}

// FromOrderDomain converts the aggregate to persistence objects.
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderLinePO) {
	orderPO := &OrderPO{
		ID:             o.ID(),
		UserID:         o.UserID(),
		Number:         o.Number(),
		PlacedAt:       o.PlacedAt(),
		Status:         string(o.Status()),
		DeliveryMethod: string(o.DeliveryMethod()),
		AddressID:      o.AddressID(),
		Notes:          o.Notes(),
		Subtotal:       o.Subtotal().Amount(),
		Tax:            o.Tax().Amount(),
		Total:          o.Total().Amount(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}

	lines := o.Lines()
	linePOs := make([]OrderLinePO, len(lines))
	for i, line := range lines {
		linePOs[i] = OrderLinePO{
			ID:          line.ID(),
			OrderID:     o.ID(),
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Amount(),
			Subtotal:    line.Subtotal().Amount(),
			Notes:       line.Notes(),
		}
	}

	return orderPO, linePOs
}

// ToDomain reconstructs the aggregate from persistence objects.
func (po *OrderPO) ToDomain(linePOs []OrderLinePO) *order.Order {
	lines := make([]order.LineItem, len(linePOs))
	for i, linePO := range linePOs {
		lines[i] = order.RebuildLineFromDTO(order.LineReconstructionDTO{
			ID:          linePO.ID,
			ProductID:   linePO.ProductID,
			ProductName: linePO.ProductName,
			Quantity:    linePO.Quantity,
			UnitPrice:   shared.NewMoney(linePO.UnitPrice),
			Subtotal:    shared.NewMoney(linePO.Subtotal),
			Notes:       linePO.Notes,
		})
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:             po.ID,
		UserID:         po.UserID,
		Number:         po.Number,
		PlacedAt:       po.PlacedAt,
		Status:         order.Status(po.Status),
		DeliveryMethod: order.DeliveryMethod(po.DeliveryMethod),
		AddressID:      po.AddressID,
		Notes:          po.Notes,
		Lines:          lines,
		Subtotal:       shared.NewMoney(po.Subtotal),
		Tax:            shared.NewMoney(po.Tax),
		Total:          shared.NewMoney(po.Total),
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	})
}
