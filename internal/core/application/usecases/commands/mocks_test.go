package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/booking"
	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/user"
	"rental/internal/core/ports"
)

// discardLogger keeps handler output out of the test log.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CountRentalsByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) FindHoldersOfCoupon(ctx context.Context, couponID int64) ([]*order.Order, error) {
	args := m.Called(ctx, couponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockClothesRepository struct{ mock.Mock }

func (m *MockClothesRepository) Add(ctx context.Context, item *clothes.Clothes) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothesRepository) Update(ctx context.Context, item *clothes.Clothes) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothesRepository) Get(ctx context.Context, id int64) (*clothes.Clothes, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothes.Clothes), args.Error(1)
}

func (m *MockClothesRepository) GetByCode(ctx context.Context, code string) (*clothes.Clothes, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clothes.Clothes), args.Error(1)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) Get(ctx context.Context, id int64) (*coupon.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) CountUsedByEvent(ctx context.Context, event string) (int, error) {
	args := m.Called(ctx, event)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.UserInfo) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.UserInfo) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.UserInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.UserInfo), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) GetForUpdate(ctx context.Context, at string, gender user.Gender) (*booking.Slot, error) {
	args := m.Called(ctx, at, gender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Slot), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, slot *booking.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

// mockTx provides the transaction trio shared by every unit of work mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReservationUoW struct{ mockTx }

func (m *MockReservationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReservationUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockReservationUoW) CouponRepository() ports.CouponRepository {
	args := m.Called()
	return args.Get(0).(ports.CouponRepository)
}

func (m *MockReservationUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReservationUoW)
}

type MockFulfillmentUoW struct{ mockTx }

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) ClothesRepository() ports.ClothesRepository {
	args := m.Called()
	return args.Get(0).(ports.ClothesRepository)
}

func (m *MockFulfillmentUoW) CouponRepository() ports.CouponRepository {
	args := m.Called()
	return args.Get(0).(ports.CouponRepository)
}

func (m *MockFulfillmentUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) Post(ctx context.Context, orderID int64, from, to order.Status) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

type MockMessageRenderer struct{ mock.Mock }

func (m *MockMessageRenderer) Render(name string, data map[string]any) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

type MockMessageSender struct{ mock.Mock }

func (m *MockMessageSender) Send(ctx context.Context, phone, text string) error {
	args := m.Called(ctx, phone, text)
	return args.Error(0)
}

type MockCampaignClient struct{ mock.Mock }

func (m *MockCampaignClient) RelayScheduleChange(ctx context.Context, orderID int64, visitAt time.Time) error {
	args := m.Called(ctx, orderID, visitAt)
	return args.Error(0)
}
