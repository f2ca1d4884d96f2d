package kernel

import (
	"fmt"

	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via NewPrice or PriceFromFloat.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or PriceFromFloat constructors")

// Price represents a non-negative monetary amount. It is an immutable value
// object backed by an arbitrary-precision decimal, so item prices and order
// totals do not accumulate binary floating point drift.
//
// The zero value of Price is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.PriceFromFloat(19.99)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 19.99
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is negative; zero is a valid price.
func NewPrice(amount decimal.Decimal) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// PriceFromFloat creates a Price from a float64 amount, as carried by JSON
// request bodies. Returns an error if the amount is negative.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// ZeroPrice returns a valid Price of zero. It is the total of an order whose
// items all cost nothing and the starting point for total recomputation.
func ZeroPrice() Price {
	return Price{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two prices. Both operands must be properly
// constructed; the sum of non-negative amounts is always a valid Price.
func (p Price) Add(other Price) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if err := other.Validate(); err != nil {
		return Price{}, err
	}

	return Price{
		amount: p.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount as a float64 for API response mapping.
// The conversion may round amounts that exceed float64 precision.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// IsEqual compares two prices by numeric value, ignoring exponent
// representation, so 5 and 5.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (p Price) String() string {
	return p.amount.String()
}

// Validate checks that the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p *Price) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount))
	}
	p.amount = amount
	return nil
}
