package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comedor/domain/order"
	"comedor/infrastructure/persistence"
	"comedor/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// OrderRepository is the GORM implementation of order.Repository. Lines are
// read and written with explicit queries, never through associations.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Insert stores the order header and its lines, then writes the generated ID
// back into the aggregate.
func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) error {
	db := r.getDB(ctx)

	orderPO, linePOs := po.FromOrderDomain(o)
	if err := db.Create(orderPO).Error; err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	o.SetID(orderPO.ID)

	for i := range linePOs {
		linePOs[i].OrderID = orderPO.ID
		if err := db.Create(&linePOs[i]).Error; err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}
	return nil
}

// Update rewrites the order header. Lines are immutable after creation and
// are not touched.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	db := r.getDB(ctx)

	orderPO, _ := po.FromOrderDomain(o)
	result := db.Model(&po.OrderPO{}).Where("id = ?", orderPO.ID).Updates(map[string]any{
		"number":     orderPO.Number,
		"status":     orderPO.Status,
		"notes":      orderPO.Notes,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.NewOrderNotFoundError(orderPO.ID)
	}
	return nil
}

// FindByID loads one order with its lines.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	if err := db.First(&orderPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	lines, err := r.findLines(db, id)
	if err != nil {
		return nil, err
	}
	return orderPO.ToDomain(lines), nil
}

// FindByUserID loads a user's orders, newest first.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*order.Order, error) {
	db := r.getDB(ctx)

	var orderPOs []po.OrderPO
	if err := db.Where("user_id = ?", userID).Order("placed_at DESC").Find(&orderPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by user: %w", err)
	}
	return r.hydrate(db, orderPOs)
}

// FindByStatus loads all orders currently in the given status, oldest first
// so the kitchen works the queue in arrival order.
func (r *OrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	db := r.getDB(ctx)

	var orderPOs []po.OrderPO
	if err := db.Where("status = ?", string(status)).Order("placed_at ASC").Find(&orderPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by status: %w", err)
	}
	return r.hydrate(db, orderPOs)
}

// FindForDay loads the orders placed on the calendar day of t (UTC).
func (r *OrderRepository) FindForDay(ctx context.Context, t time.Time) ([]*order.Order, error) {
	db := r.getDB(ctx)

	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var orderPOs []po.OrderPO
	if err := db.Where("placed_at >= ? AND placed_at < ?", dayStart, dayEnd).
		Order("placed_at ASC").Find(&orderPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders for day: %w", err)
	}
	return r.hydrate(db, orderPOs)
}

func (r *OrderRepository) findLines(db *gorm.DB, orderID int64) ([]po.OrderLinePO, error) {
	var linePOs []po.OrderLinePO
	if err := db.Where("order_id = ?", orderID).Order("id ASC").Find(&linePOs).Error; err != nil {
		return nil, fmt.Errorf("failed to find order lines: %w", err)
	}
	return linePOs, nil
}

func (r *OrderRepository) hydrate(db *gorm.DB, orderPOs []po.OrderPO) ([]*order.Order, error) {
	orders := make([]*order.Order, len(orderPOs))
	for i := range orderPOs {
		lines, err := r.findLines(db, orderPOs[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i] = orderPOs[i].ToDomain(lines)
	}
	return orders, nil
}

var _ order.Repository = (*OrderRepository)(nil)
