package application

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ordercli/internal/domain"
)

// CreateOrder parses raw item strings, delegates invariant checks to the
// Order factory and persists the result.
type CreateOrder struct {
	repo   domain.OrderRepository
	logger *zap.Logger
}

func NewCreateOrder(repo domain.OrderRepository, logger *zap.Logger) *CreateOrder {
	return &CreateOrder{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateOrder) Execute(ctx context.Context, customerID string, rawItems []string) Response {
	resp, err := uc.execute(ctx, customerID, rawItems)
	if err == nil {
		return resp
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		uc.logger.Info("order rejected", zap.String("reason", verr.Error()))
		return errorResponse(verr.Error())
	}

	// Only the save path can fail with anything else.
	uc.logger.Error("order save failed", zap.Error(err))
	return errorResponse("Failed to save order: " + err.Error())
}

func (uc *CreateOrder) execute(ctx context.Context, customerID string, rawItems []string) (Response, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("Customer ID is required")
	}
	if len(rawItems) == 0 {
		return nil, domain.NewValidationError("At least one line item is required")
	}

	items, err := parseItems(rawItems)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(uc.repo.NextID(), customerID, items)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("order_id", order.ID()),
		zap.String("customer_id", order.CustomerID()),
		zap.Float64("total", order.Total()),
	)
	return OrderResponse{Status: statusSuccess, Order: order.Record()}, nil
}

func parseItems(rawItems []string) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		parts := strings.Split(raw, ",")
		if len(parts) != 3 {
			return nil, invalidItemError(raw)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, invalidItemError(raw)
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, invalidItemError(raw)
		}
		items = append(items, domain.LineItem{
			ProductID: strings.TrimSpace(parts[0]),
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}
	return items, nil
}

func invalidItemError(raw string) *domain.ValidationError {
	return domain.NewValidationError("Invalid item format '%s': expected 'productId,quantity,unitPrice'", raw)
}
