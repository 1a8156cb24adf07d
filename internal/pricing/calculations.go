// Package pricing holds the line-item derivations used by the order form.
// All arithmetic is plain float64; callers clamp inputs (quantity floor 1,
// discount bounded to [0,100]) before invoking.
package pricing

// LineTotals is the derived pricing for one line item.
type LineTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

// Derive computes subtotal, discount amount and total for a line item.
func Derive(unitPrice float64, quantity int, discountPercent float64) LineTotals {
	subtotal := unitPrice * float64(quantity)
	discountAmount := subtotal * discountPercent / 100
	return LineTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

// UnitPriceForVolume derives the displayed unit price when the selected
// unit of measure carries a quantity-per-unit factor. It always recomputes
// from the original base price: switching units replaces the prior
// adjustment, it never compounds on top of it. A missing factor means the
// base unit.
func UnitPriceForVolume(basePrice, factor float64) float64 {
	if factor <= 0 {
		factor = 1
	}
	return basePrice * factor
}
