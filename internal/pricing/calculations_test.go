package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	cases := []struct {
		name            string
		unitPrice       float64
		quantity        int
		discountPercent float64
		want            LineTotals
	}{
		{"no discount", 12.5, 10, 0, LineTotals{Subtotal: 125, DiscountAmount: 0, Total: 125}},
		{"ten percent", 100, 2, 10, LineTotals{Subtotal: 200, DiscountAmount: 20, Total: 180}},
		{"full discount", 50, 1, 100, LineTotals{Subtotal: 50, DiscountAmount: 50, Total: 0}},
		{"single unit", 38.9, 1, 5, LineTotals{Subtotal: 38.9, DiscountAmount: 1.945, Total: 36.955}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.unitPrice, tc.quantity, tc.discountPercent)
			assert.InDelta(t, tc.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.want.DiscountAmount, got.DiscountAmount, 1e-9)
			assert.InDelta(t, tc.want.Total, got.Total, 1e-9)
		})
	}
}

func TestDeriveTotalsAddUp(t *testing.T) {
	got := Derive(19.99, 7, 12.5)
	require.InDelta(t, got.Subtotal-got.DiscountAmount, got.Total, 1e-9)
}

func TestUnitPriceForVolume(t *testing.T) {
	assert.InDelta(t, 60.0, UnitPriceForVolume(5, 12), 1e-9)
	assert.InDelta(t, 5.0, UnitPriceForVolume(5, 1), 1e-9)
}

func TestUnitPriceForVolumeMissingFactorMeansBaseUnit(t *testing.T) {
	assert.InDelta(t, 5.0, UnitPriceForVolume(5, 0), 1e-9)
	assert.InDelta(t, 5.0, UnitPriceForVolume(5, -3), 1e-9)
}

func TestUnitPriceForVolumeNeverCompounds(t *testing.T) {
	base := 8.75
	// Switching CX -> UN -> CX lands back on the same price.
	boxed := UnitPriceForVolume(base, 24)
	single := UnitPriceForVolume(base, 1)
	boxedAgain := UnitPriceForVolume(base, 24)
	assert.InDelta(t, boxed, boxedAgain, 1e-9)
	assert.InDelta(t, base, single, 1e-9)
}
