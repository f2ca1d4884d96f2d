package product_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
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

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	validMerchantID := kernel.NewUUID()

	t.Run("should create available product with valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, validMerchantID,
			"Arabica beans", "single origin", "coffee", mustPrice(t, 12.5), 40)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.True(t, p.MerchantID().IsEqual(validMerchantID))
		assert.Equal(t, "Arabica beans", p.Name())
		assert.Equal(t, "single origin", p.Description())
		assert.Equal(t, "coffee", p.Category())
		assert.Equal(t, "12.5", p.Price().String())
		assert.Equal(t, 40, p.Quantity())
		assert.Equal(t, product.Available, p.Status())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(validID, validMerchantID,
			"", "", "", mustPrice(t, 1), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := product.NewProduct(validID, validMerchantID,
			"beans", "", "", mustPrice(t, 1), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var price kernel.Price

		_, err := product.NewProduct(validID, validMerchantID, "beans", "", "", price, 1)

		require.Error(t, err)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidMerchantID kernel.UUID

		_, err := product.NewProduct(validID, invalidMerchantID, "", "", "", mustPrice(t, 1), -3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "merchantId")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore with stored status", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"beans", "", "coffee", mustPrice(t, 5), 0, product.Limited)

		require.NoError(t, err)
		assert.Equal(t, product.Limited, p.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"beans", "", "", mustPrice(t, 5), 0, product.StatusUnknown)

		require.Error(t, err)
	})
}

func TestProduct_Mutations(t *testing.T) {
	newTestProduct := func(t *testing.T) *product.Product {
		t.Helper()
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"beans", "desc", "coffee", mustPrice(t, 10), 5)
		require.NoError(t, err)
		return p
	}

	t.Run("Rename", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Rename("premium beans"))
		assert.Equal(t, "premium beans", p.Name())

		require.ErrorIs(t, p.Rename(""), errs.ErrValueIsRequired)
		assert.Equal(t, "premium beans", p.Name())
	})

	t.Run("ChangePrice", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ChangePrice(mustPrice(t, 11.25)))
		assert.Equal(t, "11.25", p.Price().String())

		var invalid kernel.Price
		require.Error(t, p.ChangePrice(invalid))
		assert.Equal(t, "11.25", p.Price().String())
	})

	t.Run("ChangeQuantity", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ChangeQuantity(0))
		assert.Equal(t, 0, p.Quantity())

		require.Error(t, p.ChangeQuantity(-2))
		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("ChangeStatus", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ChangeStatus(product.Unavailable))
		assert.Equal(t, product.Unavailable, p.Status())

		require.Error(t, p.ChangeStatus(product.StatusUnknown))
		assert.Equal(t, product.Unavailable, p.Status())
	})

	t.Run("ChangeDescription and ChangeCategory", func(t *testing.T) {
		p := newTestProduct(t)

		p.ChangeDescription("")
		p.ChangeCategory("tea")

		assert.Empty(t, p.Description())
		assert.Equal(t, "tea", p.Category())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value", func(t *testing.T) {
		var nilProduct *product.Product
		var zeroProduct product.Product

		assert.Equal(t, product.ErrProductIsNotConstructed, nilProduct.Validate())
		assert.Equal(t, product.ErrProductIsNotConstructed, zeroProduct.Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		for s, expected := range map[string]product.Status{
			"available":   product.Available,
			"unavailable": product.Unavailable,
			"limited":     product.Limited,
		} {
			status, err := product.StatusFromString(s)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := product.StatusFromString("discontinued")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
