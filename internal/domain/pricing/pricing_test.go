package pricing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func items(pairs ...[2]string) []pricing.LineItem {
	out := make([]pricing.LineItem, 0, len(pairs))
	for _, p := range pairs {
		qty, _ := decimal.NewFromString(p[0])
		out = append(out, pricing.LineItem{
			ProductID: uuid.New(),
			Quantity:  int(qty.IntPart()),
			UnitPrice: dec(p[1]),
		})
	}
	return out
}

func TestComputeTotals_FixedDiscountWithTax(t *testing.T) {
	// 2 x 24.99 + 1 x 49.96 = 99.94, fixed discount 10.00, 5% tax
	lines := items([2]string{"2", "24.99"}, [2]string{"1", "49.96"})
	discount := &pricing.Discount{Type: enum.DiscountFixed, Value: dec("10.00")}

	totals, err := pricing.ComputeTotals(lines, discount, dec("0.05"))
	require.NoError(t, err)

	assert.True(t, dec("99.94").Equal(totals.Subtotal), "subtotal = %s", totals.Subtotal)
	assert.True(t, dec("10.00").Equal(totals.DiscountAmount), "discount = %s", totals.DiscountAmount)
	assert.True(t, dec("4.50").Equal(totals.Tax), "tax = %s", totals.Tax)
	assert.True(t, dec("94.44").Equal(totals.Total), "total = %s", totals.Total)
}

func TestComputeTotals_PercentageDiscount(t *testing.T) {
	lines := items([2]string{"2", "24.99"}, [2]string{"1", "49.96"})
	discount := &pricing.Discount{Type: enum.DiscountPercentage, Value: dec("10")}

	totals, err := pricing.ComputeTotals(lines, discount, dec("0.05"))
	require.NoError(t, err)

	// 10% of 99.94 = 9.994 -> 9.99, base 89.95, tax 4.4975 -> 4.50
	assert.True(t, dec("9.99").Equal(totals.DiscountAmount), "discount = %s", totals.DiscountAmount)
	assert.True(t, dec("4.50").Equal(totals.Tax), "tax = %s", totals.Tax)
	assert.True(t, dec("94.45").Equal(totals.Total), "total = %s", totals.Total)
}

func TestComputeTotals_NoDiscount(t *testing.T) {
	lines := items([2]string{"3", "10.00"})

	totals, err := pricing.ComputeTotals(lines, nil, dec("0.05"))
	require.NoError(t, err)

	assert.True(t, dec("30.00").Equal(totals.Subtotal))
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, dec("1.50").Equal(totals.Tax))
	assert.True(t, dec("31.50").Equal(totals.Total))
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals, err := pricing.ComputeTotals(nil, nil, dec("0.05"))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_DiscountClampedToSubtotal(t *testing.T) {
	lines := items([2]string{"2", "24.99"}, [2]string{"1", "49.96"})
	discount := &pricing.Discount{Type: enum.DiscountFixed, Value: dec("150.00")}

	totals, err := pricing.ComputeTotals(lines, discount, dec("0.05"))
	require.NoError(t, err)

	// Discount caps at the subtotal so the taxable base never goes negative
	assert.True(t, totals.Subtotal.Equal(totals.DiscountAmount))
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_ZeroTaxRate(t *testing.T) {
	lines := items([2]string{"1", "100.00"})

	totals, err := pricing.ComputeTotals(lines, nil, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, totals.Tax.IsZero())
	assert.True(t, dec("100.00").Equal(totals.Total))
}

func TestComputeTotals_Deterministic(t *testing.T) {
	lines := items([2]string{"7", "3.33"}, [2]string{"2", "19.95"})
	discount := &pricing.Discount{Type: enum.DiscountPercentage, Value: dec("12.5")}

	first, err := pricing.ComputeTotals(lines, discount, dec("0.19"))
	require.NoError(t, err)

	second, err := pricing.ComputeTotals(lines, discount, dec("0.19"))
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeTotals_InvalidInputs(t *testing.T) {
	valid := items([2]string{"1", "10.00"})

	tests := []struct {
		name     string
		items    []pricing.LineItem
		discount *pricing.Discount
		taxRate  decimal.Decimal
	}{
		{
			name:    "negative tax rate",
			items:   valid,
			taxRate: dec("-0.05"),
		},
		{
			name:     "percentage above 100",
			items:    valid,
			discount: &pricing.Discount{Type: enum.DiscountPercentage, Value: dec("101")},
			taxRate:  dec("0.05"),
		},
		{
			name:     "negative discount value",
			items:    valid,
			discount: &pricing.Discount{Type: enum.DiscountFixed, Value: dec("-5")},
			taxRate:  dec("0.05"),
		},
		{
			name:     "unknown discount type",
			items:    valid,
			discount: &pricing.Discount{Type: enum.DiscountType("bogus"), Value: dec("5")},
			taxRate:  dec("0.05"),
		},
		{
			name:    "zero quantity",
			items:   []pricing.LineItem{{ProductID: uuid.New(), Quantity: 0, UnitPrice: dec("10.00")}},
			taxRate: dec("0.05"),
		},
		{
			name:    "negative quantity",
			items:   []pricing.LineItem{{ProductID: uuid.New(), Quantity: -1, UnitPrice: dec("10.00")}},
			taxRate: dec("0.05"),
		},
		{
			name:    "negative unit price",
			items:   []pricing.LineItem{{ProductID: uuid.New(), Quantity: 1, UnitPrice: dec("-10.00")}},
			taxRate: dec("0.05"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.ComputeTotals(tt.items, tt.discount, tt.taxRate)
			assert.Error(t, err)
		})
	}
}

func TestMergeItem_MergesSameVariation(t *testing.T) {
	productID := uuid.New()
	variationID := uuid.New()

	lines := pricing.MergeItem(nil, pricing.LineItem{
		ProductID:   productID,
		VariationID: &variationID,
		Quantity:    2,
		UnitPrice:   dec("5.00"),
	})
	lines = pricing.MergeItem(lines, pricing.LineItem{
		ProductID:   productID,
		VariationID: &variationID,
		Quantity:    3,
		UnitPrice:   dec("5.00"),
	})

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestMergeItem_KeepsDistinctVariationsApart(t *testing.T) {
	productID := uuid.New()
	variationA := uuid.New()
	variationB := uuid.New()

	lines := pricing.MergeItem(nil, pricing.LineItem{ProductID: productID, VariationID: &variationA, Quantity: 1, UnitPrice: dec("5.00")})
	lines = pricing.MergeItem(lines, pricing.LineItem{ProductID: productID, VariationID: &variationB, Quantity: 1, UnitPrice: dec("5.00")})
	lines = pricing.MergeItem(lines, pricing.LineItem{ProductID: productID, Quantity: 1, UnitPrice: dec("5.00")})

	// No variation counts as its own line too
	assert.Len(t, lines, 3)
}

func TestMergeItem_NilVariationMerges(t *testing.T) {
	productID := uuid.New()

	lines := pricing.MergeItem(nil, pricing.LineItem{ProductID: productID, Quantity: 1, UnitPrice: dec("5.00")})
	lines = pricing.MergeItem(lines, pricing.LineItem{ProductID: productID, Quantity: 4, UnitPrice: dec("5.00")})

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(9994), pricing.Cents(dec("99.94")))
	assert.Equal(t, int64(0), pricing.Cents(decimal.Zero))
	assert.True(t, dec("99.94").Equal(pricing.FromCents(9994)))
	assert.True(t, dec("0.05").Equal(pricing.FromCents(5)))
}
