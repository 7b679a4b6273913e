// Package couponrepo persists coupons. The benefit sum type flattens into a
// kind discriminator plus one numeric parameter.
package couponrepo

import (
	"fmt"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/pkg/errs"
)

// Benefit kind discriminators.
const (
	benefitKindFixed = "fixed"
	benefitKindRate  = "rate"
	benefitKindSuit  = "suit"
)

// CouponDTO represents the database structure for persisting coupons.
type CouponDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	BenefitKind   string
	BenefitAmount int
	Status        int    `gorm:"index"`
	Event         string `gorm:"index"`
	Memo          string
}

// TableName specifies the database table name for coupons.
func (CouponDTO) TableName() string {
	return "coupons"
}

// fromDomain converts a coupon to its database representation.
func fromDomain(c *coupon.Coupon) CouponDTO {
	dto := CouponDTO{
		ID:     c.ID(),
		Status: int(c.Status()),
		Event:  c.Event(),
		Memo:   c.Memo(),
	}

	switch benefit := c.Benefit().(type) {
	case coupon.FixedBenefit:
		dto.BenefitKind = benefitKindFixed
		dto.BenefitAmount = benefit.Amount
	case coupon.RateBenefit:
		dto.BenefitKind = benefitKindRate
		dto.BenefitAmount = benefit.Percent
	case coupon.SuitBenefit:
		dto.BenefitKind = benefitKindSuit
	}

	return dto
}

// toDomain converts a database DTO to a coupon using RestoreCoupon.
func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	var benefit coupon.Benefit
	switch dto.BenefitKind {
	case benefitKindFixed:
		benefit = coupon.FixedBenefit{Amount: dto.BenefitAmount}
	case benefitKindRate:
		benefit = coupon.RateBenefit{Percent: dto.BenefitAmount}
	case benefitKindSuit:
		benefit = coupon.SuitBenefit{}
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("benefit kind",
			fmt.Errorf("%q is not a known benefit kind", dto.BenefitKind))
	}

	return coupon.RestoreCoupon(dto.ID, benefit, coupon.Status(dto.Status), dto.Event, dto.Memo)
}
