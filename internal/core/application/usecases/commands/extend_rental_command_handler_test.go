package commands_test

import (
	"context"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExtendRentalCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	policy := services.DefaultPolicy()

	t.Run("should move the deadline and reprice the clothing lines", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}
		uow := &MockOrderUoW{}
		repo := &MockOrderRepository{}
		aggregate := paymentOrder(t, 7, nil)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Update", ctx, aggregate).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewExtendRentalCommandHandler(factory, policy)
		cmd, err := commands.NewExtendRentalCommand(7, 2)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, aggregate.AdditionalDay())
		assert.Equal(t, 28000, aggregate.LineItems()[0].FinalPrice())
		assert.Equal(t, 14000, aggregate.LineItems()[1].FinalPrice())
		require.NotNil(t, aggregate.TargetDate())
		assert.Equal(t, 23, aggregate.TargetDate().Hour())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should roll back when the order is not in payment", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}
		uow := &MockOrderUoW{}
		repo := &MockOrderRepository{}
		aggregate := rentalOrder(t, 7)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewExtendRentalCommandHandler(factory, policy)
		cmd, err := commands.NewExtendRentalCommand(7, 2)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.Rental, aggregate.Status())
		uow.AssertExpectations(t)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		factory := &MockOrderUoWFactory{}

		handler := commands.NewExtendRentalCommandHandler(factory, policy)

		err := handler.Handle(ctx, commands.ExtendRentalCommand{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrExtendRentalCommandIsNotConstructed)
		factory.AssertExpectations(t)
	})
}
