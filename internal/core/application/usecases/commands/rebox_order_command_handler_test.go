package commands_test

import (
	"context"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReboxOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should undo the packing and release the items", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}
		uow := &MockFulfillmentUoW{}
		orderRepo := &MockOrderRepository{}
		clothesRepo := &MockClothesRepository{}
		notifier := &MockNotificationClient{}
		aggregate := paymentOrder(t, 7, nil)
		jacket := inventoryItem(t, 11, "JK001", clothes.Jacket, 20000)
		pants := inventoryItem(t, 12, "PT001", clothes.Pants, 10000)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Get", ctx, int64(11)).Return(jacket, nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Update", ctx, jacket).Return(nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Get", ctx, int64(12)).Return(pants, nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Update", ctx, pants).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			notifier.On("Post", ctx, int64(7), order.Payment, order.Box).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewReboxOrderCommandHandler(factory, notifier, discardLogger)
		cmd, err := commands.NewReboxOrderCommand(7)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Box, aggregate.Status())
		assert.Empty(t, aggregate.LineItems())
		assert.Equal(t, order.CancelBox, jacket.Status())
		assert.Equal(t, order.CancelBox, pants.Status())
		uow.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should roll back when the order is not in payment", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}
		uow := &MockFulfillmentUoW{}
		orderRepo := &MockOrderRepository{}
		notifier := &MockNotificationClient{}
		aggregate := rentalOrder(t, 7)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewReboxOrderCommandHandler(factory, notifier, discardLogger)
		cmd, err := commands.NewReboxOrderCommand(7)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.Rental, aggregate.Status())
		uow.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}

		handler := commands.NewReboxOrderCommandHandler(factory, &MockNotificationClient{}, discardLogger)

		err := handler.Handle(ctx, commands.ReboxOrderCommand{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrReboxOrderCommandIsNotConstructed)
		factory.AssertExpectations(t)
	})
}
