package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := []commands.ItemArgument{
		{Name: "apple", Price: 5},
		{Name: "banana", Price: 10},
	}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(invalidID, customerID, items)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, customerID, nil)

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("invalid items are aggregated", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, customerID, []commands.ItemArgument{
			{Name: "", Price: 5},
			{Name: "apple", Price: -1},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
