package kernel_test

import (
	"testing"

	"aquaflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		addr, err := kernel.NewAddress("Av. Los Alamos 742, Cercado")

		require.NoError(t, err)
		assert.Equal(t, "Av. Los Alamos 742, Cercado", addr.String())
		require.NoError(t, addr.Validate())
	})

	t.Run("trims_whitespace", func(t *testing.T) {
		addr, err := kernel.NewAddress("  Calle Union 15  ")

		require.NoError(t, err)
		assert.Equal(t, "Calle Union 15", addr.String())
	})

	t.Run("blank_rejected", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsRequired, err)
	})
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var zero kernel.Address

	err := zero.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrAddressIsRequired, err)
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("Jr. Puno 100")
	b, _ := kernel.NewAddress("Jr. Puno 100")
	c, _ := kernel.NewAddress("Jr. Puno 101")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
