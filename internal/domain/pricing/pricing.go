package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/pkg/apperror"
)

// LineItem is one product-variation/quantity/price entry in a draft order.
type LineItem struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Discount specifies how an order discount is applied. A nil discount is
// treated as a fixed discount of zero.
type Discount struct {
	Type  enum.DiscountType
	Value decimal.Decimal
}

// Totals holds the derived order amounts. They are recomputed from the line
// items and discount whenever either changes and persisted only as a snapshot
// at order-creation time.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	two     = int32(2)
)

// LineTotal returns the item's own total (quantity x unit price) rounded to
// currency precision.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).Round(two)
}

// ComputeTotals derives subtotal, discount amount, tax and grand total from the
// given line items. It is a pure function: no side effects, identical inputs
// always yield identical outputs.
//
//	subtotal = sum(quantity_i x unitPrice_i)
//	discount = value (fixed) or subtotal * value/100 (percentage), clamped to [0, subtotal]
//	tax      = (subtotal - discount) * taxRate
//	total    = subtotal - discount + tax
//
// All monetary results are rounded to 2 decimal places, half up.
func ComputeTotals(items []LineItem, discount *Discount, taxRate decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() {
		return Totals{}, apperror.NewInvalidInputError("Tax rate must not be negative")
	}
	if err := validateDiscount(discount); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, apperror.NewInvalidInputError("Quantity must be a positive integer")
		}
		if item.UnitPrice.IsNegative() {
			return Totals{}, apperror.NewInvalidInputError("Unit price must not be negative")
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	subtotal = subtotal.Round(two)

	discountAmount := discountAmount(subtotal, discount)
	taxableBase := subtotal.Sub(discountAmount)
	tax := taxableBase.Mul(taxRate).Round(two)
	total := taxableBase.Add(tax).Round(two)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Tax:            tax,
		Total:          total,
	}, nil
}

func validateDiscount(d *Discount) error {
	if d == nil {
		return nil
	}
	if d.Value.IsNegative() {
		return apperror.NewInvalidInputError("Discount value must not be negative")
	}
	if d.Type == enum.DiscountPercentage && d.Value.GreaterThan(hundred) {
		return apperror.NewInvalidInputError("Percentage discount must not exceed 100")
	}
	if !d.Type.Valid() {
		return apperror.NewInvalidInputError("Unknown discount type")
	}
	return nil
}

// discountAmount resolves the discount against the subtotal. The result is
// clamped to [0, subtotal] so the taxable base can never go negative.
func discountAmount(subtotal decimal.Decimal, d *Discount) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if d.Type == enum.DiscountPercentage {
		amount = subtotal.Mul(d.Value).Div(hundred).Round(two)
	} else {
		amount = d.Value.Round(two)
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// MergeItem adds an item to a draft order's line items. When a line for the
// same product variation already exists its quantity is increased instead of
// appending a duplicate line.
func MergeItem(items []LineItem, add LineItem) []LineItem {
	for i := range items {
		if sameVariation(items[i], add) {
			items[i].Quantity += add.Quantity
			return items
		}
	}
	return append(items, add)
}

func sameVariation(a, b LineItem) bool {
	if a.ProductID != b.ProductID {
		return false
	}
	if a.VariationID == nil || b.VariationID == nil {
		return a.VariationID == nil && b.VariationID == nil
	}
	return *a.VariationID == *b.VariationID
}

// Cents converts a 2-decimal amount to integer cents for storage.
func Cents(d decimal.Decimal) int64 {
	return d.Mul(hundred).IntPart()
}

// FromCents converts stored integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}
