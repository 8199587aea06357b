package domain

import "math"

// LineItem is a single product line within an order. It is a value object:
// compared by its fields, never mutated after construction. It performs no
// validation itself — invariants are enforced by the Order factory.
type LineItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Subtotal returns quantity * unitPrice rounded to cents.
func (li LineItem) Subtotal() float64 {
	return round2(float64(li.Quantity) * li.UnitPrice)
}

// LineItemRecord is the storage/output shape of a line item. Subtotal is
// derived on the way out and recomputed (not trusted) on the way in.
type LineItemRecord struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

func (li LineItem) Record() LineItemRecord {
	return LineItemRecord{
		ProductID: li.ProductID,
		Quantity:  li.Quantity,
		UnitPrice: li.UnitPrice,
		Subtotal:  li.Subtotal(),
	}
}

func LineItemFromRecord(rec LineItemRecord) LineItem {
	return LineItem{
		ProductID: rec.ProductID,
		Quantity:  rec.Quantity,
		UnitPrice: rec.UnitPrice,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
