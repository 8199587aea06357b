package domain

import (
	"context"
	"errors"
)

// ErrOrderNotFound is returned by repositories when no stored order has the
// requested ID.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the persistence contract for the Order aggregate.
type OrderRepository interface {
	// NextID returns the next sequential order ID, e.g. ORD-0001.
	NextID() string
	// Save appends the order and persists it.
	Save(ctx context.Context, order *Order) error
	// FindByID returns the order with the given ID or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindAll returns every stored order in insertion order.
	FindAll(ctx context.Context) ([]*Order, error)
}
