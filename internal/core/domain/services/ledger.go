package services

import (
	"fmt"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
)

// CouponLedger moves coupons between orders. A coupon is held by at most one
// non-terminal order; transferring it forcibly detaches it from every current
// holder and leaves an audit note on each side.
//
// The ledger operates on loaded aggregates only; the caller persists every
// order and coupon it touched inside the same transaction as the triggering
// transition.
type CouponLedger struct{}

// NewCouponLedger creates a ledger.
func NewCouponLedger() CouponLedger {
	return CouponLedger{}
}

// Transfer moves c to dest. holders are the orders currently referencing the
// coupon (may be empty). dest may be nil to only detach.
//
// Rules:
//   - terminal coupons (used, discarded, expired) refuse the transfer;
//   - a reserved coupon is detached from every holder first, each detachment
//     recorded on the holder and on the coupon;
//   - a provided coupon is promoted to reserved.
func (CouponLedger) Transfer(c *coupon.Coupon, holders []*order.Order, dest *order.Order) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Status().IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("coupon is not transferable",
			fmt.Errorf("coupon %d is %s", c.ID(), c.Status()))
	}

	for _, holder := range holders {
		if dest != nil && holder.ID() == dest.ID() {
			continue
		}
		holder.DetachCoupon(fmt.Sprintf("쿠폰 %d 회수: 다른 주문으로 이관", c.ID()))
		c.AppendMemo(fmt.Sprintf("주문 %d에서 회수", holder.ID()))
	}

	if c.Status() == coupon.Provided {
		if err := c.Reserve(); err != nil {
			return err
		}
	}

	if dest != nil {
		dest.AttachCoupon(c.ID())
		if len(holders) > 0 {
			dest.AppendMemo(fmt.Sprintf("쿠폰 %d 이관 (이전 보유 주문 %d건)", c.ID(), len(holders)))
		}
	}
	return nil
}
