package product_test

import (
	"testing"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		price := mustMoney(t, 750)

		p, err := product.NewProduct(id, "Agua 20L", "Bidon retornable", price, "bidon")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Agua 20L", p.Name())
		assert.True(t, p.UnitPrice().IsEqual(price))
		assert.Equal(t, "bidon", p.UnitOfMeasure())
		assert.True(t, p.IsActive())
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "", mustMoney(t, 100), "paquete")

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("missing_unit_of_measure", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Agua 625ml", "", mustMoney(t, 100), "")

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrUnitOfMeasureIsRequired)
	})

	t.Run("invalid_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := product.NewProduct(zero, "Agua 625ml", "", mustMoney(t, 100), "paquete")

		require.Error(t, err)
	})
}

func TestRestoreProduct_KeepsActiveFlag(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), "Agua 3L", "", mustMoney(t, 300), "botella", false)

	require.NoError(t, err)
	assert.False(t, p.IsActive())
}

func TestProduct_DeactivateAndActivate(t *testing.T) {
	p, _ := product.NewProduct(kernel.NewUUID(), "Agua 625ml", "", mustMoney(t, 100), "paquete")

	p.Deactivate()
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestProduct_Validate_ZeroValue(t *testing.T) {
	var p product.Product

	err := p.Validate()

	require.Error(t, err)
	assert.Equal(t, product.ErrProductIsNotConstructed, err)
}
