package commands_test

import (
	"testing"

	"aquaflow/internal/core/application/usecases/commands"
	"aquaflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewConfirmOrderCommand(orderID, "secret")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "secret", cmd.PresentedToken())
	})

	t.Run("missing_token_rejected", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, commands.ErrConfirmationTokenIsRequired)
	})

	t.Run("zero_order_id_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewConfirmOrderCommand(zero, "secret")

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.ConfirmOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
	})
}
