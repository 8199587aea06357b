package memory

import (
	"context"
	"fmt"

	"ordercli/internal/domain"
)

// Repository is the in-memory implementation of domain.OrderRepository.
// Nothing survives the process; it exists for tests and for callers that
// explicitly opt out of persistence.
type Repository struct {
	orders []*domain.Order
}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) NextID() string {
	return fmt.Sprintf("ORD-%04d", len(r.orders)+1)
}

func (r *Repository) Save(_ context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *Repository) FindAll(_ context.Context) ([]*domain.Order, error) {
	return append([]*domain.Order(nil), r.orders...), nil
}
