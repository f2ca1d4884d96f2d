package guard_test

import (
	"errors"
	"testing"

	"ecommerce/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		name  string
		price int64
		guard guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("lineItem must be created via newLineItem")

	newLineItem := func(name string, price int64) (lineItem, error) {
		if name == "" {
			return lineItem{}, errors.New("name is required")
		}
		if price < 0 {
			return lineItem{}, errors.New("price cannot be negative")
		}
		return lineItem{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateLineItem := func(i lineItem) error {
		return i.guard.Validate(errLineItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem("espresso", 350)

		require.NoError(t, err)
		require.NoError(t, validateLineItem(item))
		assert.Equal(t, "espresso", item.name)
		assert.Equal(t, int64(350), item.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var item lineItem // zero value

		err := validateLineItem(item)

		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})
}
