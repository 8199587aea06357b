package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ordercli/internal/domain"
)

// ViewOrder looks a single order up by its ID.
type ViewOrder struct {
	repo   domain.OrderRepository
	logger *zap.Logger
}

func NewViewOrder(repo domain.OrderRepository, logger *zap.Logger) *ViewOrder {
	return &ViewOrder{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ViewOrder) Execute(ctx context.Context, id string) Response {
	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return errorResponse(fmt.Sprintf("Order not found: %s", id))
		}
		uc.logger.Error("order lookup failed", zap.String("order_id", id), zap.Error(err))
		return errorResponse(err.Error())
	}
	return OrderResponse{Status: statusSuccess, Order: order.Record()}
}
