package order_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

func mustClothesLine(t *testing.T, clothesID int64, name string, price int) *order.LineItem {
	t.Helper()
	li, err := order.NewClothesLineItem(clothesID, name, price)
	require.NoError(t, err)
	return li
}

func packedLines(t *testing.T) []*order.LineItem {
	t.Helper()
	shipping, err := order.NewAdjustmentLineItem(order.LineNameShipping)
	require.NoError(t, err)
	adjustment, err := order.NewAdjustmentLineItem(order.LineNameAdjustment)
	require.NoError(t, err)
	return []*order.LineItem{
		mustClothesLine(t, 11, "JK001", 10000),
		mustClothesLine(t, 12, "PT001", 10000),
		shipping,
		adjustment,
	}
}

// orderInPayment walks a fresh order to Payment status.
func orderInPayment(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, false, false, "면접")
	require.NoError(t, err)
	require.NoError(t, o.Reservate(time.Date(2026, 3, 2, 14, 0, 0, 0, seoul)))
	require.NoError(t, o.CheckIn())
	require.NoError(t, o.Pack(packedLines(t), 0))
	require.NoError(t, o.BeginPayment(time.Date(2026, 3, 2, 15, 0, 0, 0, seoul), 3, seoul))
	return o
}

func orderInRental(t *testing.T) *order.Order {
	t.Helper()
	o := orderInPayment(t)
	require.NoError(t, o.StartRental("카드", &order.BodySnapshot{Height: 175, Weight: 70}))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in None status", func(t *testing.T) {
		o, err := order.NewOrder(42, true, false, "면접")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(42), o.UserID())
		assert.Equal(t, order.None, o.Status())
		assert.True(t, o.Online())
		assert.False(t, o.Agent())
		assert.Equal(t, "면접", o.Purpose())
		assert.Nil(t, o.CouponID())
		assert.Nil(t, o.ParentID())
		assert.Empty(t, o.LineItems())
	})

	t.Run("should fail with non-positive user id", func(t *testing.T) {
		for _, userID := range []int64{0, -1} {
			o, err := order.NewOrder(userID, false, false, "")

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "is not a valid user id")
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Reservate(t *testing.T) {
	t.Run("should move to Reservated and record the visit", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		visitAt := time.Date(2026, 3, 2, 14, 0, 0, 0, seoul)

		err := o.Reservate(visitAt)

		require.NoError(t, err)
		assert.Equal(t, order.Reservated, o.Status())
		require.NotNil(t, o.RentalDate())
		assert.True(t, o.RentalDate().Equal(visitAt))
	})

	t.Run("should reject a second reservation", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Now()))

		err := o.Reservate(time.Now())

		require.Error(t, err)
		assert.Equal(t, order.Reservated, o.Status())
	})
}

func TestOrder_UpdateReservation(t *testing.T) {
	t.Run("should reschedule a reservated order", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Date(2026, 3, 2, 14, 0, 0, 0, seoul)))
		newVisit := time.Date(2026, 3, 5, 11, 0, 0, 0, seoul)

		err := o.UpdateReservation(newVisit)

		require.NoError(t, err)
		assert.True(t, o.RentalDate().Equal(newVisit))
		assert.Equal(t, order.Reservated, o.Status())
	})

	t.Run("should reschedule an order awaiting payment", func(t *testing.T) {
		o := orderInPayment(t)
		newVisit := time.Date(2026, 3, 9, 11, 0, 0, 0, seoul)

		err := o.UpdateReservation(newVisit)

		require.NoError(t, err)
		assert.True(t, o.RentalDate().Equal(newVisit))
		assert.Equal(t, order.Payment, o.Status())
	})

	t.Run("should reject rescheduling a rental in progress", func(t *testing.T) {
		o := orderInRental(t)

		err := o.UpdateReservation(time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status to update reservation")
	})
}

func TestOrder_Pack(t *testing.T) {
	t.Run("should fix the lines and move to Boxed", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Now()))
		require.NoError(t, o.CheckIn())
		lines := packedLines(t)

		err := o.Pack(lines, -5000)

		require.NoError(t, err)
		assert.Equal(t, order.Boxed, o.Status())
		assert.Len(t, o.LineItems(), 4)
		assert.Equal(t, -5000, o.SaleDiscount())
	})

	t.Run("should reject a positive sale discount", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Now()))
		require.NoError(t, o.CheckIn())

		err := o.Pack(packedLines(t), 5000)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sale discount")
		assert.Equal(t, order.Box, o.Status())
	})

	t.Run("should reject packing before check in", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Now()))

		err := o.Pack(packedLines(t), 0)

		require.Error(t, err)
	})
}

func TestOrder_BeginPayment(t *testing.T) {
	t.Run("should set both target dates to end of day", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")
		require.NoError(t, o.Reservate(time.Now()))
		require.NoError(t, o.CheckIn())
		require.NoError(t, o.Pack(packedLines(t), 0))
		now := time.Date(2026, 3, 2, 15, 30, 0, 0, seoul)

		err := o.BeginPayment(now, 3, seoul)

		require.NoError(t, err)
		assert.Equal(t, order.Payment, o.Status())
		want := time.Date(2026, 3, 5, 23, 59, 59, 0, seoul)
		require.NotNil(t, o.TargetDate())
		require.NotNil(t, o.UserTargetDate())
		assert.True(t, o.TargetDate().Equal(want))
		assert.True(t, o.UserTargetDate().Equal(want))
	})
}

func TestOrder_Extend(t *testing.T) {
	t.Run("should push the target dates and reprice clothing lines", func(t *testing.T) {
		o := orderInPayment(t)
		now := time.Date(2026, 3, 3, 10, 0, 0, 0, seoul)

		err := o.Extend(2, now, 3, 20, seoul)

		require.NoError(t, err)
		assert.Equal(t, 2, o.AdditionalDay())
		want := time.Date(2026, 3, 8, 23, 59, 59, 0, seoul)
		assert.True(t, o.TargetDate().Equal(want))
		assert.True(t, o.UserTargetDate().Equal(want))

		for _, li := range o.LineItems() {
			if li.IsClothes() {
				// price + price*20%*2 days
				assert.Equal(t, li.Price()+li.Price()*20/100*2, li.FinalPrice())
			} else {
				assert.Equal(t, li.Price(), li.FinalPrice())
			}
		}
	})

	t.Run("should reject negative days", func(t *testing.T) {
		o := orderInPayment(t)

		err := o.Extend(-1, time.Now(), 3, 20, seoul)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "additional days")
	})

	t.Run("should reject extension outside the payment window", func(t *testing.T) {
		o := orderInRental(t)

		err := o.Extend(1, time.Now(), 3, 20, seoul)

		require.Error(t, err)
	})
}

func TestOrder_StartRental(t *testing.T) {
	t.Run("should move to Rental with the payment method and body snapshot", func(t *testing.T) {
		o := orderInPayment(t)
		body := &order.BodySnapshot{Height: 175, Weight: 70, Chest: 96, Waist: 80, Foot: 270}

		err := o.StartRental("카드", body)

		require.NoError(t, err)
		assert.Equal(t, order.Rental, o.Status())
		assert.Equal(t, "카드", o.PricePayWith())
		assert.Equal(t, body, o.Body())
		for _, li := range o.LineItems() {
			if li.IsClothes() {
				assert.Equal(t, order.Rental, li.Status())
			}
		}
	})

	t.Run("should require a payment method", func(t *testing.T) {
		o := orderInPayment(t)

		err := o.StartRental("", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment method")
		assert.Equal(t, order.Payment, o.Status())
	})

	t.Run("should drop the body snapshot for agent orders", func(t *testing.T) {
		o, err := order.NewOrder(1, false, true, "")
		require.NoError(t, err)
		require.NoError(t, o.Reservate(time.Now()))
		require.NoError(t, o.CheckIn())
		require.NoError(t, o.Pack(packedLines(t), 0))
		require.NoError(t, o.BeginPayment(time.Now(), 3, seoul))

		err = o.StartRental("현금", &order.BodySnapshot{Height: 180})

		require.NoError(t, err)
		assert.Nil(t, o.Body())
	})
}

func TestOrder_CompleteReturn(t *testing.T) {
	t.Run("should close the rental without fees", func(t *testing.T) {
		o := orderInRental(t)
		returnedAt := time.Date(2026, 3, 4, 18, 0, 0, 0, seoul)

		err := o.CompleteReturn(returnedAt, nil, nil, "", "")

		require.NoError(t, err)
		assert.Equal(t, order.Returned, o.Status())
		require.NotNil(t, o.ReturnDate())
		assert.True(t, o.ReturnDate().Equal(returnedAt))
		for _, li := range o.LineItems() {
			if li.IsClothes() {
				assert.Equal(t, order.Returned, li.Status())
			}
		}
	})

	t.Run("should append fee lines and record the payment methods", func(t *testing.T) {
		o := orderInRental(t)
		fee, err := order.NewFeeLineItem(order.StageLateFee, "연체료", 6000, 12000, "카드")
		require.NoError(t, err)

		err = o.CompleteReturn(time.Now(), nil, []*order.LineItem{fee}, "카드", "")

		require.NoError(t, err)
		assert.Equal(t, "카드", o.LateFeePayWith())
		assert.Len(t, o.LineItems(), 5)
	})

	t.Run("should require a late fee payment method when a charge is present", func(t *testing.T) {
		o := orderInRental(t)
		fee, err := order.NewFeeLineItem(order.StageLateFee, "연체료", 6000, 12000, "")
		require.NoError(t, err)

		err = o.CompleteReturn(time.Now(), nil, []*order.LineItem{fee}, "", "")

		require.Error(t, err)
		assert.Equal(t, order.ErrLateFeePayWithIsRequired, err)
		assert.Equal(t, order.Rental, o.Status())
	})

	t.Run("should require a compensation payment method when a charge is present", func(t *testing.T) {
		o := orderInRental(t)
		fee, err := order.NewFeeLineItem(order.StageCompensation, "배상금", 20000, 20000, "")
		require.NoError(t, err)

		err = o.CompleteReturn(time.Now(), nil, []*order.LineItem{fee}, "", "")

		require.Error(t, err)
		assert.Equal(t, order.ErrCompensationPayWithIsRequired, err)
	})

	t.Run("should not require a payment method for fully waived charges", func(t *testing.T) {
		o := orderInRental(t)
		waiver, err := order.NewWaiverLineItem(order.StageLateFee, "연체료 할인", 12000, "")
		require.NoError(t, err)

		err = o.CompleteReturn(time.Now(), nil, []*order.LineItem{waiver}, "", "")

		require.NoError(t, err)
	})

	t.Run("should only mark the listed clothing lines as returned", func(t *testing.T) {
		o := orderInRental(t)

		err := o.CompleteReturn(time.Now(), []int64{11}, nil, "", "")

		require.NoError(t, err)
		for _, li := range o.LineItems() {
			if !li.IsClothes() {
				continue
			}
			if *li.ClothesID() == 11 {
				assert.Equal(t, order.Returned, li.Status())
			} else {
				assert.Equal(t, order.Rental, li.Status())
			}
		}
	})

	t.Run("should reject return before rental starts", func(t *testing.T) {
		o := orderInPayment(t)

		err := o.CompleteReturn(time.Now(), nil, nil, "", "")

		require.Error(t, err)
	})
}

func TestOrder_PaybackWith(t *testing.T) {
	t.Run("should refund the rental and move every line to Payback", func(t *testing.T) {
		o := orderInRental(t)
		refund, err := order.NewRefundLineItem("환불", -20000, "카드")
		require.NoError(t, err)

		err = o.PaybackWith(refund)

		require.NoError(t, err)
		assert.Equal(t, order.Payback, o.Status())
		assert.Len(t, o.LineItems(), 5)
		for _, li := range o.LineItems() {
			if li.IsClothes() {
				assert.Equal(t, order.Payback, li.Status())
			}
		}
	})

	t.Run("should require a refund line", func(t *testing.T) {
		o := orderInRental(t)

		err := o.PaybackWith(nil)

		require.Error(t, err)
		assert.Equal(t, order.Rental, o.Status())
	})

	t.Run("should reject a non-refund line", func(t *testing.T) {
		o := orderInRental(t)
		notRefund := mustClothesLine(t, 99, "JK099", 1000)

		err := o.PaybackWith(notRefund)

		require.Error(t, err)
	})
}

func TestOrder_Rebox(t *testing.T) {
	t.Run("should drop the lines and reset payment fields", func(t *testing.T) {
		o := orderInPayment(t)
		require.NoError(t, o.Extend(1, time.Now(), 3, 20, seoul))

		err := o.Rebox()

		require.NoError(t, err)
		assert.Equal(t, order.Box, o.Status())
		assert.Empty(t, o.LineItems())
		assert.Nil(t, o.RentalDate())
		assert.Nil(t, o.TargetDate())
		assert.Nil(t, o.UserTargetDate())
		assert.Zero(t, o.AdditionalDay())
		assert.Empty(t, o.PricePayWith())
		assert.Zero(t, o.SaleDiscount())
	})

	t.Run("should reject rebox outside the payment window", func(t *testing.T) {
		o := orderInRental(t)

		err := o.Rebox()

		require.Error(t, err)
	})
}

func TestNewChildOrder(t *testing.T) {
	t.Run("should copy the parent context but not the coupon", func(t *testing.T) {
		parent := orderInRental(t)
		parent.SetID(77)
		parent.AttachCoupon(5)

		child, err := order.NewChildOrder(parent)

		require.NoError(t, err)
		require.NoError(t, child.Validate())
		assert.Equal(t, order.Box, child.Status())
		assert.Equal(t, parent.UserID(), child.UserID())
		require.NotNil(t, child.ParentID())
		assert.Equal(t, int64(77), *child.ParentID())
		assert.Nil(t, child.CouponID())
		assert.Empty(t, child.LineItems())
		require.NotNil(t, child.RentalDate())
		assert.True(t, child.RentalDate().Equal(*parent.RentalDate()))
	})

	t.Run("should fail for an unconstructed parent", func(t *testing.T) {
		var parent order.Order

		child, err := order.NewChildOrder(&parent)

		require.Error(t, err)
		assert.Nil(t, child)
	})
}

func TestOrder_ClothesIDs(t *testing.T) {
	t.Run("should return the ids of clothing lines only", func(t *testing.T) {
		o := orderInPayment(t)

		assert.Equal(t, []int64{11, 12}, o.ClothesIDs())
	})

	t.Run("should be empty for a fresh order", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")

		assert.Empty(t, o.ClothesIDs())
	})
}

func TestOrder_Coupon(t *testing.T) {
	t.Run("should attach and detach a coupon", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")

		o.AttachCoupon(9)
		require.NotNil(t, o.CouponID())
		assert.Equal(t, int64(9), *o.CouponID())

		o.DetachCoupon("쿠폰 9 회수")
		assert.Nil(t, o.CouponID())
		assert.Contains(t, o.Memo(), "쿠폰 9 회수")
	})
}

func TestOrder_AppendMemo(t *testing.T) {
	t.Run("should accumulate notes separated by newlines", func(t *testing.T) {
		o, _ := order.NewOrder(1, false, false, "")

		o.AppendMemo("first")
		o.AppendMemo("second")
		o.AppendMemo("")

		assert.Equal(t, "first\nsecond", o.Memo())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reconstruct an order from persistence", func(t *testing.T) {
		visitAt := time.Date(2026, 3, 2, 14, 0, 0, 0, seoul)
		couponID := int64(3)
		lines := []*order.LineItem{
			order.RestoreLineItem(1, nil, "배송비", 0, 0, order.StageRental, order.Payment, "", ""),
		}

		o, err := order.RestoreOrder(
			10, 1, &couponID, nil, order.Rental,
			&visitAt, nil, nil, nil,
			0, "카드", "", "",
			false, true, false, false, "면접", "memo",
			0, nil, lines,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(10), o.ID())
		assert.Equal(t, order.Rental, o.Status())
		assert.Equal(t, &couponID, o.CouponID())
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			10, 1, nil, nil, order.CancelBox,
			nil, nil, nil, nil,
			0, "", "", "",
			false, false, false, false, "", "",
			0, nil, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
