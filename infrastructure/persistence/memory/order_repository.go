package memory

import (
	"context"
	"sort"
	"time"

	"comedor/domain/order"
)

// OrderRepository is the in-memory implementation of order.Repository.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates the repository.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Insert stores the order, assigning order and line identifiers.
func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	o.SetID(s.nextOrderID)
	s.orders[o.ID()] = r.toDTOLocked(o)
	return nil
}

// Update rewrites the stored order.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID()]; !ok {
		return order.NewOrderNotFoundError(o.ID())
	}
	s.orders[o.ID()] = r.toDTOLocked(o)
	return nil
}

// FindByID loads one order.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.orders[id]
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	dto.Lines = append([]order.LineItem(nil), dto.Lines...)
	return order.RebuildFromDTO(dto), nil
}

// FindByUserID loads a user's orders, newest first.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*order.Order, error) {
	return r.findWhere(func(dto order.ReconstructionDTO) bool {
		return dto.UserID == userID
	}, newestFirst), nil
}

// FindByStatus loads all orders in the given status, oldest first.
func (r *OrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.findWhere(func(dto order.ReconstructionDTO) bool {
		return dto.Status == status
	}, oldestFirst), nil
}

// FindForDay loads the orders placed on the calendar day of t (UTC).
func (r *OrderRepository) FindForDay(ctx context.Context, t time.Time) ([]*order.Order, error) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	return r.findWhere(func(dto order.ReconstructionDTO) bool {
		return !dto.PlacedAt.Before(dayStart) && dto.PlacedAt.Before(dayEnd)
	}, oldestFirst), nil
}

const (
	oldestFirst = iota
	newestFirst
)

func (r *OrderRepository) findWhere(match func(order.ReconstructionDTO) bool, direction int) []*order.Order {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dtos []order.ReconstructionDTO
	for _, dto := range s.orders {
		if match(dto) {
			dto.Lines = append([]order.LineItem(nil), dto.Lines...)
			dtos = append(dtos, dto)
		}
	}
	sort.Slice(dtos, func(i, j int) bool {
		if direction == newestFirst {
			return dtos[i].PlacedAt.After(dtos[j].PlacedAt)
		}
		return dtos[i].PlacedAt.Before(dtos[j].PlacedAt)
	})

	orders := make([]*order.Order, len(dtos))
	for i, dto := range dtos {
		orders[i] = order.RebuildFromDTO(dto)
	}
	return orders
}

// toDTOLocked converts the aggregate to its stored form, assigning line IDs
// to lines that have none yet. Caller holds the store lock.
func (r *OrderRepository) toDTOLocked(o *order.Order) order.ReconstructionDTO {
	lines := o.Lines()
	stored := make([]order.LineItem, len(lines))
	for i, line := range lines {
		id := line.ID()
		if id == 0 {
			r.store.nextOrderLineID++
			id = r.store.nextOrderLineID
		}
		stored[i] = order.RebuildLineFromDTO(order.LineReconstructionDTO{
			ID:          id,
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			Subtotal:    line.Subtotal(),
			Notes:       line.Notes(),
		})
	}
	return order.ReconstructionDTO{
		ID:             o.ID(),
		UserID:         o.UserID(),
		Number:         o.Number(),
		PlacedAt:       o.PlacedAt(),
		Status:         o.Status(),
		DeliveryMethod: o.DeliveryMethod(),
		AddressID:      o.AddressID(),
		Notes:          o.Notes(),
		Lines:          stored,
		Subtotal:       o.Subtotal(),
		Tax:            o.Tax(),
		Total:          o.Total(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

var _ order.Repository = (*OrderRepository)(nil)
