package domain

import (
	"fmt"
	"time"
)

// StatusDraft is the only status the system produces; there is no
// transition logic.
const StatusDraft = "DRAFT"

// createdAtLayout is second precision with a literal Z suffix.
const createdAtLayout = "2006-01-02T15:04:05Z"

// ValidationError reports a violated order invariant or a malformed input.
// Its message text is part of the CLI contract.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Order is the aggregate root for one customer order. All fields are set at
// construction and never mutated afterwards; mutating operations do not
// exist. Item state is held by value, so callers cannot reach shared state
// through an Order.
type Order struct {
	id         string
	customerID string
	status     string
	items      []LineItem
	createdAt  time.Time
	total      float64
}

// NewOrder validates and constructs a DRAFT order. Checks run in a fixed
// order and the first violation wins: customer, items non-empty, then per
// item quantity, unit price, duplicate product ID.
func NewOrder(id, customerID string, items []LineItem) (*Order, error) {
	if customerID == "" {
		return nil, NewValidationError("Customer ID is required")
	}
	if len(items) == 0 {
		return nil, NewValidationError("At least one line item is required")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, NewValidationError("Invalid quantity for %s: must be greater than 0", item.ProductID)
		}
		if item.UnitPrice < 0 {
			return nil, NewValidationError("Invalid unit price for %s: must be >= 0", item.ProductID)
		}
		if _, ok := seen[item.ProductID]; ok {
			return nil, NewValidationError("Duplicate product ID: %s", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	return newOrder(id, customerID, StatusDraft, items, time.Now().UTC().Truncate(time.Second)), nil
}

// newOrder builds an order without validation and derives the total.
func newOrder(id, customerID, status string, items []LineItem, createdAt time.Time) *Order {
	o := &Order{
		id:         id,
		customerID: customerID,
		status:     status,
		items:      append([]LineItem(nil), items...),
		createdAt:  createdAt,
	}
	var sum float64
	for _, item := range o.items {
		sum += item.Subtotal()
	}
	o.total = round2(sum)
	return o
}

func (o *Order) ID() string { return o.id }

func (o *Order) CustomerID() string { return o.customerID }

func (o *Order) Status() string { return o.status }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Total() float64 { return o.total }

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// OrderRecord is the full storage/output shape of an order. Field order is
// fixed so rewrites of the storage file stay stable.
type OrderRecord struct {
	OrderID    string           `json:"orderId"`
	CustomerID string           `json:"customerId"`
	Status     string           `json:"status"`
	Items      []LineItemRecord `json:"items"`
	Total      float64          `json:"total"`
	CreatedAt  string           `json:"createdAt"`
}

// OrderSummary is the compact shape used by listings: everything but the
// items.
type OrderSummary struct {
	OrderID    string  `json:"orderId"`
	CustomerID string  `json:"customerId"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
	CreatedAt  string  `json:"createdAt"`
}

func (o *Order) Record() OrderRecord {
	items := make([]LineItemRecord, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.Record())
	}
	return OrderRecord{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Status:     o.status,
		Items:      items,
		Total:      o.total,
		CreatedAt:  o.createdAt.UTC().Format(createdAtLayout),
	}
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Status:     o.status,
		Total:      o.total,
		CreatedAt:  o.createdAt.UTC().Format(createdAtLayout),
	}
}

// OrderFromRecord reconstructs an order from storage without re-running
// validation: previously saved data is trusted as-is. The total is
// recomputed from the items rather than read from the record.
func OrderFromRecord(rec OrderRecord) (*Order, error) {
	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse createdAt %q: %w", rec.CreatedAt, err)
	}
	items := make([]LineItem, 0, len(rec.Items))
	for _, ir := range rec.Items {
		items = append(items, LineItemFromRecord(ir))
	}
	return newOrder(rec.OrderID, rec.CustomerID, rec.Status, items, createdAt.UTC()), nil
}
