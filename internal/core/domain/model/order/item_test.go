package order_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	p, err := kernel.PriceFromFloat(amount)
	require.NoError(t, err)
	return p
}

func mustItem(t *testing.T, name string, amount float64) order.Item {
	t.Helper()
	item, err := order.NewItem(name, mustPrice(t, amount))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid name and price", func(t *testing.T) {
		item, err := order.NewItem("espresso beans", mustPrice(t, 9.99))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "espresso beans", item.Name())
		assert.Equal(t, "9.99", item.Price().String())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		item, err := order.NewItem("free sample", kernel.ZeroPrice())

		require.NoError(t, err)
		assert.True(t, item.Price().IsEqual(kernel.ZeroPrice()))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem("", mustPrice(t, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var price kernel.Price

		_, err := order.NewItem("beans", price)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})

	t.Run("should report both failures for empty name and invalid price", func(t *testing.T) {
		var price kernel.Price

		_, err := order.NewItem("", price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "price must be created")
	})
}

func TestItem_IsEqual(t *testing.T) {
	t.Run("should compare by name and price", func(t *testing.T) {
		a := mustItem(t, "beans", 10)
		b := mustItem(t, "beans", 10)
		c := mustItem(t, "beans", 11)
		d := mustItem(t, "grounds", 10)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(d))
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
