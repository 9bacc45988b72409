package enum

import "database/sql/driver"

// DiscountType represents how an order discount is applied
type DiscountType string

const (
	// DiscountFixed subtracts a flat currency amount from the subtotal
	DiscountFixed DiscountType = "fixed"
	// DiscountPercentage subtracts a percentage (0-100) of the subtotal
	DiscountPercentage DiscountType = "percentage"
)

// Valid reports whether the discount type is known
func (d DiscountType) Valid() bool {
	return d == DiscountFixed || d == DiscountPercentage
}

func (d DiscountType) String() string {
	return string(d)
}

func (d DiscountType) Value() (driver.Value, error) {
	return string(d), nil
}

func (d *DiscountType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*d = DiscountType(v)
	case []byte:
		*d = DiscountType(v)
	}
	return nil
}
