package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPackOrderCommand(7, []string{"JK001", "PT001"})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, []string{"JK001", "PT001"}, cmd.ClothesCodes())
}

func TestNewPackOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPackOrderCommand(0, []string{"JK001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestNewPackOrderCommand_EmptyCodes(t *testing.T) {
	_, err := commands.NewPackOrderCommand(7, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClothesCodesAreRequired)
}

func TestNewPackOrderCommand_BlankCode(t *testing.T) {
	_, err := commands.NewPackOrderCommand(7, []string{"JK001", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClothesCodesAreRequired)
}

func TestPackOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.PackOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPackOrderCommandIsNotConstructed)
}
