package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateReservationCommand_ValidInput(t *testing.T) {
	visitAt := time.Date(2026, 3, 3, 16, 0, 0, 0, time.UTC)
	couponID := int64(3)

	cmd, err := commands.NewUpdateReservationCommand(7, visitAt, &couponID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, visitAt, cmd.VisitAt())
	require.NotNil(t, cmd.CouponID())
	assert.Equal(t, couponID, *cmd.CouponID())
}

func TestNewUpdateReservationCommand_NilCoupon(t *testing.T) {
	cmd, err := commands.NewUpdateReservationCommand(7, time.Date(2026, 3, 3, 16, 0, 0, 0, time.UTC), nil)

	require.NoError(t, err)
	assert.Nil(t, cmd.CouponID())
}

func TestNewUpdateReservationCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateReservationCommand(0, time.Now(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestNewUpdateReservationCommand_ZeroVisitAt(t *testing.T) {
	_, err := commands.NewUpdateReservationCommand(7, time.Time{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVisitAtIsRequired)
}

func TestUpdateReservationCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateReservationCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateReservationCommandIsNotConstructed)
}
