package order

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method (or RestoreOrder for persistence).
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLateFeePayWithIsRequired is returned when a late return is closed
	// without naming how the late fee is paid.
	ErrLateFeePayWithIsRequired = errs.NewValueIsRequiredError("late fee payment method")

	// ErrCompensationPayWithIsRequired is returned when a compensation charge is
	// given without naming how it is paid.
	ErrCompensationPayWithIsRequired = errs.NewValueIsRequiredError("compensation payment method")
)

// BodySnapshot captures the renter's measurements on the order at rental
// start, so later size questions are answered against what was actually fitted.
type BodySnapshot struct {
	Height int
	Weight int
	Chest  int
	Waist  int
	Foot   int
}

// Order is the aggregate root of a rental. It owns the status state machine
// and the order line items; every transition mutates the aggregate only through
// validated methods so the invariants of the lifecycle hold.
//
// Order follows these invariants:
//   - Status moves monotonically along the transition graph (see Status)
//   - Additional-day mutation is only legal while status is Payment
//   - Line items are only replaced by transitions, never edited ad hoc
//     (except the final-price recompute on extension and OverridePrice)
//   - A child order produced by a partial return references its parent and
//     never carries the parent's coupon
type Order struct {
	id       int64
	userID   int64
	couponID *int64
	parentID *int64
	status   Status

	rentalDate     *time.Time
	targetDate     *time.Time
	userTargetDate *time.Time
	returnDate     *time.Time
	additionalDay  int

	pricePayWith        string
	lateFeePayWith      string
	compensationPayWith string

	agent   bool
	online  bool
	ignore  bool
	bestfit bool

	purpose      string
	memo         string
	saleDiscount int
	body         *BodySnapshot

	lineItems []*LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates an order in None status for the given renter.
// Purpose is the renter's stated reason for the rental (interview, ceremony…)
// and feeds the regional-program eligibility check.
func NewOrder(userID int64, online, agent bool, purpose string) (*Order, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("user id",
			fmt.Errorf("%d is not a valid user id", userID))
	}
	return &Order{
		userID:  userID,
		status:  None,
		online:  online,
		agent:   agent,
		purpose: purpose,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewChildOrder creates the child of a partial return. It copies the parent's
// columns except identity, additional day, return/payment fields and coupon,
// and starts in Box status ready to be re-packed with the unreturned items.
func NewChildOrder(parent *Order) (*Order, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	parentID := parent.id
	child := &Order{
		userID:   parent.userID,
		parentID: &parentID,
		status:   Box,
		agent:    parent.agent,
		online:   parent.online,
		ignore:   parent.ignore,
		bestfit:  parent.bestfit,
		purpose:  parent.purpose,
		body:     parent.body,
		guard:    guard.NewConstructorGuard(),
	}
	if parent.rentalDate != nil {
		d := *parent.rentalDate
		child.rentalDate = &d
	}
	if parent.targetDate != nil {
		d := *parent.targetDate
		child.targetDate = &d
	}
	if parent.userTargetDate != nil {
		d := *parent.userTargetDate
		child.userTargetDate = &d
	}
	return child, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
func RestoreOrder(
	id, userID int64, couponID, parentID *int64, status Status,
	rentalDate, targetDate, userTargetDate, returnDate *time.Time,
	additionalDay int, pricePayWith, lateFeePayWith, compensationPayWith string,
	agent, online, ignore, bestfit bool, purpose, memo string,
	saleDiscount int, body *BodySnapshot, lineItems []*LineItem,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		id:                  id,
		userID:              userID,
		couponID:            couponID,
		parentID:            parentID,
		status:              status,
		rentalDate:          rentalDate,
		targetDate:          targetDate,
		userTargetDate:      userTargetDate,
		returnDate:          returnDate,
		additionalDay:       additionalDay,
		pricePayWith:        pricePayWith,
		lateFeePayWith:      lateFeePayWith,
		compensationPayWith: compensationPayWith,
		agent:               agent,
		online:              online,
		ignore:              ignore,
		bestfit:             bestfit,
		purpose:             purpose,
		memo:                memo,
		saleDiscount:        saleDiscount,
		body:                body,
		lineItems:           lineItems,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier (zero before first save).
func (o *Order) ID() int64 { return o.id }

// SetID is called by persistence after the first insert.
func (o *Order) SetID(id int64) { o.id = id }

// UserID returns the owning renter's identifier.
func (o *Order) UserID() int64 { return o.userID }

// CouponID returns the attached coupon, or nil.
func (o *Order) CouponID() *int64 { return o.couponID }

// ParentID returns the parent order of a partial-return child, or nil.
func (o *Order) ParentID() *int64 { return o.parentID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// RentalDate returns the visit/rental datetime, or nil.
func (o *Order) RentalDate() *time.Time { return o.rentalDate }

// TargetDate returns the return deadline, or nil before payment.
func (o *Order) TargetDate() *time.Time { return o.targetDate }

// UserTargetDate returns the renter's own requested return date, or nil.
func (o *Order) UserTargetDate() *time.Time { return o.userTargetDate }

// ReturnDate returns the actual return datetime, or nil while out.
func (o *Order) ReturnDate() *time.Time { return o.returnDate }

// AdditionalDay returns the extra rental days granted before payment.
func (o *Order) AdditionalDay() int { return o.additionalDay }

// PricePayWith returns the rental payment method.
func (o *Order) PricePayWith() string { return o.pricePayWith }

// LateFeePayWith returns the late-fee payment method.
func (o *Order) LateFeePayWith() string { return o.lateFeePayWith }

// CompensationPayWith returns the compensation payment method.
func (o *Order) CompensationPayWith() string { return o.compensationPayWith }

// Agent reports whether staff created the order on the renter's behalf.
func (o *Order) Agent() bool { return o.agent }

// Online reports whether the reservation came in online.
func (o *Order) Online() bool { return o.online }

// Ignore reports whether monitoring notifications are suppressed.
func (o *Order) Ignore() bool { return o.ignore }

// Bestfit reports whether the fitted size was confirmed.
func (o *Order) Bestfit() bool { return o.bestfit }

// Purpose returns the renter's stated purpose for this rental.
func (o *Order) Purpose() string { return o.purpose }

// Memo returns the audit notes accumulated on the order.
func (o *Order) Memo() string { return o.memo }

// SaleDiscount returns the frequent-renter sale delta recorded at packing
// time (zero or negative). Coupon discounts are carried as lines instead.
func (o *Order) SaleDiscount() int { return o.saleDiscount }

// Body returns the measurement snapshot taken at rental start, or nil.
func (o *Order) Body() *BodySnapshot { return o.body }

// LineItems returns the order's line items.
func (o *Order) LineItems() []*LineItem { return o.lineItems }

// AppendMemo records an audit note on the order.
func (o *Order) AppendMemo(note string) {
	if note == "" {
		return
	}
	if o.memo != "" {
		o.memo += "\n"
	}
	o.memo += note
}

// AttachCoupon links a coupon to this order.
func (o *Order) AttachCoupon(couponID int64) {
	o.couponID = &couponID
}

// DetachCoupon clears the coupon reference, recording why.
func (o *Order) DetachCoupon(reason string) {
	o.couponID = nil
	o.AppendMemo(reason)
}

// Reservate books the order for a visit: None -> Reservated.
func (o *Order) Reservate(visitAt time.Time) error {
	newStatus, err := o.status.Reservate()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.rentalDate = &visitAt
	return nil
}

// UpdateReservation reschedules the visit. Legal from Reservated or Payment.
func (o *Order) UpdateReservation(visitAt time.Time) error {
	if err := o.status.ValidateUpdateReservation(); err != nil {
		return err
	}
	o.rentalDate = &visitAt
	return nil
}

// CheckIn marks the renter's arrival: Reservated -> Box.
func (o *Order) CheckIn() error {
	newStatus, err := o.status.CheckIn()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Pack fixes the box contents: Box -> Boxed. The given lines replace any
// existing ones; saleDiscount records the frequent-renter in-place delta
// (zero when a coupon branch or no discount applied).
func (o *Order) Pack(lines []*LineItem, saleDiscount int) error {
	newStatus, err := o.status.Pack()
	if err != nil {
		return err
	}
	if saleDiscount > 0 {
		return errs.NewValueIsInvalidErrorWithCause("sale discount",
			fmt.Errorf("%d is positive", saleDiscount))
	}
	o.status = newStatus
	o.lineItems = lines
	o.saleDiscount = saleDiscount
	return nil
}

// BeginPayment opens the payment window: Boxed -> Payment. Both target dates
// are set to the end of the day defaultDays from now in the given zone.
func (o *Order) BeginPayment(now time.Time, defaultDays int, loc *time.Location) error {
	newStatus, err := o.status.BeginPayment()
	if err != nil {
		return err
	}
	o.status = newStatus
	due := endOfDay(now.In(loc).AddDate(0, 0, defaultDays))
	o.targetDate = &due
	userDue := due
	o.userTargetDate = &userDue
	return nil
}

// Extend applies additional rental days before payment. Both target dates are
// recomputed from today, and every stage-0 clothing line's final price becomes
// price + price*extensionRatePercent/100*days. Days must be non-negative and
// the order must still be in Payment.
func (o *Order) Extend(days int, now time.Time, defaultDays, extensionRatePercent int, loc *time.Location) error {
	if err := o.status.ValidateExtend(); err != nil {
		return err
	}
	if days < 0 {
		return errs.NewValueIsOutOfRangeError("additional days", days, 0, nil)
	}
	o.additionalDay = days
	due := endOfDay(now.In(loc).AddDate(0, 0, defaultDays+days))
	o.targetDate = &due
	userDue := due
	o.userTargetDate = &userDue

	for _, li := range o.lineItems {
		if li.Stage() == StageRental && li.IsClothes() {
			li.ReduceFinalPrice(li.Price() + li.Price()*extensionRatePercent/100*days)
		}
	}
	return nil
}

// StartRental hands the box over: Payment -> Rental. Clothing-linked lines
// move to Rental with the order. The body snapshot is nil for agent orders.
func (o *Order) StartRental(payWith string, body *BodySnapshot) error {
	newStatus, err := o.status.StartRental()
	if err != nil {
		return err
	}
	if payWith == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.status = newStatus
	o.pricePayWith = payWith
	if !o.agent {
		o.body = body
	}
	for _, li := range o.lineItems {
		if li.IsClothes() {
			li.markStatus(Rental)
		}
	}
	return nil
}

// CompleteReturn closes the rental: Rental -> Returned. feeLines are appended
// in the caller's order (extension fee, overdue fee, waiver, compensation,
// compensation waiver). returnedClothesIDs limits which clothing lines are
// marked Returned; nil marks all of them. lateFeePayWith is mandatory when a
// stage-1 charge is present, compensationPayWith when a stage-2 charge is.
func (o *Order) CompleteReturn(
	returnedAt time.Time,
	returnedClothesIDs []int64,
	feeLines []*LineItem,
	lateFeePayWith, compensationPayWith string,
) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	var hasLateFee, hasCompensation bool
	for _, li := range feeLines {
		if li.Stage() == StageLateFee && li.FinalPrice() > 0 {
			hasLateFee = true
		}
		if li.Stage() == StageCompensation && li.FinalPrice() > 0 {
			hasCompensation = true
		}
	}
	if hasLateFee && lateFeePayWith == "" {
		return ErrLateFeePayWithIsRequired
	}
	if hasCompensation && compensationPayWith == "" {
		return ErrCompensationPayWithIsRequired
	}

	o.status = newStatus
	o.returnDate = &returnedAt
	o.lateFeePayWith = lateFeePayWith
	o.compensationPayWith = compensationPayWith
	o.lineItems = append(o.lineItems, feeLines...)

	mark := func(li *LineItem) bool {
		if returnedClothesIDs == nil {
			return true
		}
		for _, id := range returnedClothesIDs {
			if li.ClothesID() != nil && *li.ClothesID() == id {
				return true
			}
		}
		return false
	}
	for _, li := range o.lineItems {
		if li.IsClothes() && mark(li) {
			li.markStatus(Returned)
		}
	}
	return nil
}

// PaybackWith refunds the rental: Rental -> Payback. The single stage-3
// refund line is appended and every line moves to Payback with the order.
func (o *Order) PaybackWith(refund *LineItem) error {
	newStatus, err := o.status.Payback()
	if err != nil {
		return err
	}
	if refund == nil || refund.Stage() != StageRefund {
		return errs.NewValueIsRequiredError("refund line")
	}
	o.status = newStatus
	o.lineItems = append(o.lineItems, refund)
	for _, li := range o.lineItems {
		if li.IsClothes() {
			li.markStatus(Payback)
		}
	}
	return nil
}

// Rebox cancels the payment and sends the order back for re-packing:
// Payment -> Box. All line items are dropped and the date, payment and fit
// fields reset to empty.
func (o *Order) Rebox() error {
	newStatus, err := o.status.Rebox()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.lineItems = nil
	o.rentalDate = nil
	o.targetDate = nil
	o.userTargetDate = nil
	o.returnDate = nil
	o.additionalDay = 0
	o.pricePayWith = ""
	o.lateFeePayWith = ""
	o.compensationPayWith = ""
	o.bestfit = false
	o.saleDiscount = 0
	return nil
}

// ClothesIDs returns the clothing item IDs referenced by stage-0 lines.
func (o *Order) ClothesIDs() []int64 {
	ids := make([]int64, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if li.Stage() == StageRental && li.IsClothes() {
			ids = append(ids, *li.ClothesID())
		}
	}
	return ids
}

// endOfDay normalizes a date to 23:59:59 local time.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
