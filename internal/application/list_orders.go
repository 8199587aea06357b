package application

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"ordercli/internal/domain"
)

// ListOrders returns a summary of every stored order plus a count.
type ListOrders struct {
	repo   domain.OrderRepository
	logger *zap.Logger
}

func NewListOrders(repo domain.OrderRepository, logger *zap.Logger) *ListOrders {
	return &ListOrders{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListOrders) Execute(ctx context.Context) Response {
	orders, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("order listing failed", zap.Error(err))
		return errorResponse(err.Error())
	}

	summaries := lo.Map(orders, func(o *domain.Order, _ int) domain.OrderSummary {
		return o.Summary()
	})
	return ListResponse{Status: statusSuccess, Orders: summaries, Count: len(summaries)}
}
