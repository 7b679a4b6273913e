package commands_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartialReturnCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	policy := services.DefaultPolicy()
	calc := services.NewLateFeeCalculator(policy)

	newHandler := func(
		factory *MockFulfillmentUoWFactory, notifier *MockNotificationClient,
	) commands.PartialReturnCommandHandler {
		return commands.NewPartialReturnCommandHandler(factory, calc, policy, notifier, discardLogger)
	}

	t.Run("should close the parent over the returned item and spawn a child", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}
		uow := &MockFulfillmentUoW{}
		orderRepo := &MockOrderRepository{}
		clothesRepo := &MockClothesRepository{}
		notifier := &MockNotificationClient{}
		parent := rentalOrder(t, 7)
		jacket := inventoryItem(t, 11, "JK001", clothes.Jacket, 20000)
		returnedAt := time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC)

		isChildOfParent := mock.MatchedBy(func(o *order.Order) bool {
			return o.ParentID() != nil && *o.ParentID() == 7 &&
				o.Status() == order.Payment &&
				o.PricePayWith() == "" &&
				len(o.ClothesIDs()) == 1 && o.ClothesIDs()[0] == 12
		})

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, int64(7)).Return(parent, nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Get", ctx, int64(11)).Return(jacket, nil).Once(),
			uow.On("ClothesRepository").Return(clothesRepo).Once(),
			clothesRepo.On("Update", ctx, jacket).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Update", ctx, parent).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", ctx, isChildOfParent).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			notifier.On("Post", ctx, int64(7), order.Rental, order.Returned).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := newHandler(factory, notifier)
		cmd, err := commands.NewPartialReturnCommand(7, returnedAt, []int64{11}, 0, "", 0, "", 0, "")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Returned, parent.Status())
		assert.Equal(t, order.Returned, jacket.Status())
		uow.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		clothesRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should reject ids that are not on the parent", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}
		uow := &MockFulfillmentUoW{}
		orderRepo := &MockOrderRepository{}
		notifier := &MockNotificationClient{}
		parent := rentalOrder(t, 7)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, int64(7)).Return(parent, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := newHandler(factory, notifier)
		cmd, err := commands.NewPartialReturnCommand(7, time.Now(), []int64{99}, 0, "", 0, "", 0, "")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.Rental, parent.Status())
		uow.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should reject returning everything", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}
		uow := &MockFulfillmentUoW{}
		orderRepo := &MockOrderRepository{}
		notifier := &MockNotificationClient{}
		parent := rentalOrder(t, 7)

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, int64(7)).Return(parent, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := newHandler(factory, notifier)
		cmd, err := commands.NewPartialReturnCommand(7, time.Now(), []int64{11, 12}, 0, "", 0, "", 0, "")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.Rental, parent.Status())
		uow.AssertExpectations(t)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		factory := &MockFulfillmentUoWFactory{}

		handler := newHandler(factory, &MockNotificationClient{})

		err := handler.Handle(ctx, commands.PartialReturnCommand{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPartialReturnCommandIsNotConstructed)
		factory.AssertExpectations(t)
	})
}
