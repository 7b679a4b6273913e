package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartialReturnCommand_ValidInput(t *testing.T) {
	returnedAt := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewPartialReturnCommand(
		7, returnedAt, []int64{11, 12},
		0, "", 0, "", 0, "",
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, returnedAt, cmd.ReturnedAt())
	assert.Equal(t, []int64{11, 12}, cmd.ReturnedClothesIDs())
}

func TestNewPartialReturnCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPartialReturnCommand(0, time.Now(), []int64{11}, 0, "", 0, "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestNewPartialReturnCommand_ZeroReturnedAt(t *testing.T) {
	_, err := commands.NewPartialReturnCommand(7, time.Time{}, []int64{11}, 0, "", 0, "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReturnedAtIsRequired)
}

func TestNewPartialReturnCommand_NoReturnedClothes(t *testing.T) {
	_, err := commands.NewPartialReturnCommand(7, time.Now(), nil, 0, "", 0, "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReturnedClothesAreRequired)
}

func TestNewPartialReturnCommand_NegativeCharges(t *testing.T) {
	_, err := commands.NewPartialReturnCommand(7, time.Now(), []int64{11}, -1, "", 0, "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChargeMustNotBeNegative)
}

func TestPartialReturnCommand_NotConstructed(t *testing.T) {
	var cmd commands.PartialReturnCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPartialReturnCommandIsNotConstructed)
}
