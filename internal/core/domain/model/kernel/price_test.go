package kernel_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from non-negative decimal", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.NewFromFloat(19.99))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "19.99", p.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, p.IsEqual(kernel.ZeroPrice()))
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
	})
}

func TestPriceFromFloat(t *testing.T) {
	t.Run("should create price from float", func(t *testing.T) {
		p, err := kernel.PriceFromFloat(7.5)

		require.NoError(t, err)
		assert.Equal(t, "7.5", p.String())
		assert.InDelta(t, 7.5, p.Float64(), 0.0001)
	})

	t.Run("should reject negative float", func(t *testing.T) {
		_, err := kernel.PriceFromFloat(-10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrice_Add(t *testing.T) {
	t.Run("should add without floating point drift", func(t *testing.T) {
		a, _ := kernel.PriceFromFloat(0.1)
		b, _ := kernel.PriceFromFloat(0.2)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "0.3", sum.String())
	})

	t.Run("should fail on zero value operand", func(t *testing.T) {
		var zeroValue kernel.Price
		a, _ := kernel.PriceFromFloat(1)

		_, err := a.Add(zeroValue)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("should compare by numeric value", func(t *testing.T) {
		a, _ := kernel.NewPrice(decimal.New(500, -2)) // 5.00
		b, _ := kernel.NewPrice(decimal.NewFromInt(5))

		assert.True(t, a.IsEqual(b))
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}
