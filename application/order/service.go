/*
Package order is the application layer around the Order aggregate: the
placement workflow, the status update operation and the read queries.

The placement workflow is the only place with cross-entity validation and
transactional responsibility. Its sequence is fixed:

 1. user must exist and be active
 2. the request must carry at least one line
 3. delivery method must parse; home delivery needs an address
 4. inside one transaction, per line in request order: product exists, is
    active, is available, quantity is positive, stock covers it; the line is
    priced at the product's current price and the stock debit is persisted
 5. totals are recomputed, the order is inserted, the order number is derived
    from the assigned identifier and the header updated
 6. after commit the fully hydrated order is re-read for the response

Failures before the transaction leave nothing to roll back; failures inside
it roll back every stock debit and the order insert. There are no retries.
*/
package order

import (
	"context"
	"errors"
	"time"

	"comedor/domain/catalog"
	"comedor/domain/order"
	"comedor/domain/shared"
	"comedor/domain/user"
	"comedor/pkg/logger"

	"go.uber.org/zap"
)

// Service orchestrates order placement, status changes and reads.
type Service struct {
	orders    order.Repository
	products  catalog.ProductRepository
	users     user.Repository
	addresses user.AddressRepository
	uow       shared.UnitOfWork
}

// NewService creates the order application service.
func NewService(
	orders order.Repository,
	products catalog.ProductRepository,
	users user.Repository,
	addresses user.AddressRepository,
	uow shared.UnitOfWork,
) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		users:     users,
		addresses: addresses,
		uow:       uow,
	}
}

// PlaceOrder runs the full placement workflow and returns the hydrated order.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	// Pre-transaction validation: nothing to roll back if any of these fail.
	u, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive() {
		return nil, user.NewUserInactiveError(u.ID())
	}
	if len(req.Items) == 0 {
		return nil, order.NewEmptyOrderError()
	}
	method, err := order.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(u.ID(), method, req.DeliveryAddressID, req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		// Lines are processed strictly in request order. Each line re-reads
		// the product inside the transaction, so a repeated product sees the
		// stock already debited by its earlier lines.
		for _, item := range req.Items {
			p, err := s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !p.IsActive() {
				return catalog.NewProductInactiveError(p.Name())
			}
			if !p.IsAvailable() {
				return catalog.NewProductUnavailableError(p.Name())
			}

			// Price is captured now; later catalog price changes do not
			// touch this order.
			if err := o.AddLine(p.ID(), p.Name(), item.Quantity, p.Price(), p.Stock(), item.Notes); err != nil {
				return err
			}
			if err := p.DebitStock(item.Quantity); err != nil {
				return err
			}
			if err := s.products.Update(ctx, p); err != nil {
				return err
			}
		}

		if err := s.orders.Insert(ctx, o); err != nil {
			return err
		}

		// The order number needs the identifier the insert just assigned.
		if err := o.AssignNumber(); err != nil {
			return err
		}
		return s.orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order placed",
		zap.Int64("order_id", o.ID()),
		zap.String("number", o.Number()),
		zap.Int64("user_id", u.ID()),
		zap.String("total", o.Total().String()))

	hydrated, err := s.orders.FindByID(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, hydrated, u)
}

// UpdateStatus applies a status change through the aggregate's transition
// table and returns the hydrated order. The aggregate's message is surfaced
// verbatim when the transition is rejected.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := o.ChangeStatus(next); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	logger.Info("order status updated",
		zap.Int64("order_id", o.ID()),
		zap.String("status", string(o.Status())))

	return s.hydrate(ctx, o)
}

// GetOrder returns one order with lines, customer and address.
func (s *Service) GetOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, o)
}

// GetUserOrders returns a user's orders, newest first.
func (s *Service) GetUserOrders(ctx context.Context, userID int64) ([]*OrderResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		if responses[i], err = s.toResponse(ctx, o, u); err != nil {
			return nil, err
		}
	}
	return responses, nil
}

// GetOrdersByStatus returns all orders in the given status.
func (s *Service) GetOrdersByStatus(ctx context.Context, status string) ([]*OrderResponse, error) {
	st, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.FindByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders)
}

// GetTodaysOrders returns the orders placed today (UTC).
func (s *Service) GetTodaysOrders(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := s.orders.FindForDay(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders)
}

// hydrate loads the customer for one order and converts it.
func (s *Service) hydrate(ctx context.Context, o *order.Order) (*OrderResponse, error) {
	u, err := s.users.FindByID(ctx, o.UserID())
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, o, u)
}

// toResponses converts a list, looking each customer up once.
func (s *Service) toResponses(ctx context.Context, orders []*order.Order) ([]*OrderResponse, error) {
	customers := make(map[int64]*user.User)
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		u, ok := customers[o.UserID()]
		if !ok {
			var err error
			u, err = s.users.FindByID(ctx, o.UserID())
			if err != nil {
				return nil, err
			}
			customers[o.UserID()] = u
		}
		var err error
		if responses[i], err = s.toResponse(ctx, o, u); err != nil {
			return nil, err
		}
	}
	return responses, nil
}

func (s *Service) toResponse(ctx context.Context, o *order.Order, u *user.User) (*OrderResponse, error) {
	lines := make([]OrderLineResponse, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = OrderLineResponse{
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().String(),
			Subtotal:    line.Subtotal().String(),
			Notes:       line.Notes(),
		}
	}

	resp := &OrderResponse{
		ID:             o.ID(),
		Number:         o.Number(),
		UserID:         o.UserID(),
		CustomerName:   u.FullName(),
		Status:         string(o.Status()),
		DeliveryMethod: string(o.DeliveryMethod()),
		Notes:          o.Notes(),
		PlacedAt:       o.PlacedAt(),
		Subtotal:       o.Subtotal().String(),
		Tax:            o.Tax().String(),
		Total:          o.Total().String(),
		Lines:          lines,
	}

	if o.AddressID() != nil {
		addr, err := s.addresses.FindByID(ctx, *o.AddressID())
		switch {
		case err == nil:
			resp.DeliveryAddress = &AddressResponse{
				ID:        addr.ID(),
				Street:    addr.Street(),
				City:      addr.City(),
				Reference: addr.Reference(),
			}
		case errors.Is(err, user.ErrAddressNotFound):
			// A deleted address only strips the embedded view.
		default:
			return nil, err
		}
	}
	return resp, nil
}
