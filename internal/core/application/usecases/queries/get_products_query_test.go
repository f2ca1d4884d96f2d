package queries_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery(t *testing.T) {
	t.Run("defaults limit when zero", func(t *testing.T) {
		query, err := queries.NewGetProductsQuery(0, 0, "", "")

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPageLimit, query.Limit())
		assert.Zero(t, query.Skip())
	})

	t.Run("accepts filters", func(t *testing.T) {
		query, err := queries.NewGetProductsQuery(20, 50, "chair", "furniture")

		require.NoError(t, err)
		assert.Equal(t, 20, query.Skip())
		assert.Equal(t, 50, query.Limit())
		assert.Equal(t, "chair", query.Search())
		assert.Equal(t, "furniture", query.Category())
	})

	t.Run("rejects negative skip", func(t *testing.T) {
		_, err := queries.NewGetProductsQuery(-1, 10, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects limit above maximum", func(t *testing.T) {
		_, err := queries.NewGetProductsQuery(0, queries.MaxPageLimit+1, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		_, err := queries.NewGetProductsQuery(0, -5, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetProductsQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetProductsQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("rejects zero UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetOrderQuery(invalidID)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewGetUserQuery(t *testing.T) {
	t.Run("rejects zero UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetUserQuery(invalidID)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
