package order

import (
	"context"

	"agathiya-store/internal/domain"
	orderrepo "agathiya-store/internal/repository/order"
	userrepo "agathiya-store/internal/repository/user"
)

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type userRepo interface {
	Count(ctx context.Context) (int, error)
}

// Service covers the order lifecycle after checkout: status transitions,
// listings and the admin dashboard aggregates.
type Service struct {
	orders orderRepo
	users  userRepo
}

func New(orders orderrepo.Repository, users userrepo.Repository) *Service {
	return &Service{orders: orders, users: users}
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ListByUser returns the purchaser's own orders, newest first.
func (s *Service) ListByUser(ctx context.Context, userName string) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	var own []domain.Order
	for _, o := range orders {
		if o.UserName == userName {
			own = append(own, o)
		}
	}
	return own, nil
}

// SetStatus moves a Pending order to Delivered or Cancelled. Both are
// terminal: once an order reaches either, further transitions fail with
// ErrStatusFinal.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return domain.Validationf("unknown status %q", status)
	}
	if !status.Terminal() {
		return domain.Validationf("orders cannot move back to %s", status)
	}
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status.Terminal() {
		return domain.ErrStatusFinal
	}
	return s.orders.SetStatus(ctx, id, status)
}

// Analytics recomputes the dashboard aggregates on demand. TotalUsers
// counts registered accounts plus the built-in admin.
func (s *Service) Analytics(ctx context.Context) (*domain.Analytics, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := domain.Analytics{
		TotalOrders: len(orders),
		TotalUsers:  userCount + 1,
	}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}
	return &stats, nil
}
