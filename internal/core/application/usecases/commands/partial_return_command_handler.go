package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// PartialReturnCommandHandler splits a rental: the parent order closes over
// the items coming back and a child order carries the rest until their own
// return.
//
// The child repeats the packing flow with zero-priced copies of the kept
// lines so nothing is billed twice; its fresh adjustment slots let staff
// charge shipping for the second leg. Late fees for the whole box settle on
// the parent now, so a strict subset is required on both sides: returning
// everything is a full return, returning nothing is not a return.
type PartialReturnCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	calc       services.LateFeeCalculator
	policy     services.Policy
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewPartialReturnCommandHandler creates a handler for the partial return.
func NewPartialReturnCommandHandler(
	uowFactory FulfillmentUoWFactory,
	calc services.LateFeeCalculator,
	policy services.Policy,
	notifier ports.NotificationClient,
	logger *slog.Logger,
) PartialReturnCommandHandler {
	return PartialReturnCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the partial return command.
func (h *PartialReturnCommandHandler) Handle(ctx context.Context, cmd PartialReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parent, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	kept, err := splitKeptClothes(parent, cmd.ReturnedClothesIDs())
	if err != nil {
		return err
	}

	var attached *coupon.Coupon
	if parent.CouponID() != nil {
		attached, err = uow.CouponRepository().Get(ctx, *parent.CouponID())
		if err != nil {
			return err
		}
	}

	feeLines, err := buildReturnFeeLines(h.calc, parent, attached, cmd.charges())
	if err != nil {
		return err
	}

	child, err := buildChildOrder(parent, kept, h.policy)
	if err != nil {
		return err
	}

	if err = parent.CompleteReturn(
		cmd.ReturnedAt(), cmd.ReturnedClothesIDs(), feeLines,
		cmd.charges().lateFeePayWith, cmd.charges().compensationPayWith,
	); err != nil {
		return err
	}

	for _, id := range cmd.ReturnedClothesIDs() {
		item, err := uow.ClothesRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		item.MarkStatus(order.Returned)
		if err = uow.ClothesRepository().Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, parent); err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, child); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, parent, order.Rental, order.Returned)
	return nil
}

// splitKeptClothes returns the parent's stage-0 clothing lines that are NOT
// in returnedIDs. Every returned id must belong to the parent, and both the
// returned set and the kept remainder must be non-empty.
func splitKeptClothes(parent *order.Order, returnedIDs []int64) ([]*order.LineItem, error) {
	returned := make(map[int64]bool, len(returnedIDs))
	for _, id := range returnedIDs {
		returned[id] = true
	}

	var kept []*order.LineItem
	matched := 0
	for _, li := range parent.LineItems() {
		if li.Stage() != order.StageRental || !li.IsClothes() {
			continue
		}
		if returned[*li.ClothesID()] {
			matched++
			continue
		}
		kept = append(kept, li)
	}

	if matched != len(returned) {
		return nil, errs.NewValueIsInvalidErrorWithCause("returned clothes",
			fmt.Errorf("%d of %d ids are not on order %d", len(returned)-matched, len(returned), parent.ID()))
	}
	if len(kept) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("returned clothes",
			fmt.Errorf("order %d would keep nothing, use a full return", parent.ID()))
	}
	return kept, nil
}

// buildChildOrder spawns the follow-up order for the kept items and walks it
// through packing into Payment. Payment fields are not copied; the child is
// handed out again through its own rental start.
func buildChildOrder(parent *order.Order, kept []*order.LineItem, policy services.Policy) (*order.Order, error) {
	child, err := order.NewChildOrder(parent)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(kept)+2)
	for _, li := range kept {
		copied, err := order.NewClothesLineItem(*li.ClothesID(), li.Name(), 0)
		if err != nil {
			return nil, err
		}
		lines = append(lines, copied)
	}
	shipping, err := order.NewAdjustmentLineItem(order.LineNameShipping)
	if err != nil {
		return nil, err
	}
	adjustment, err := order.NewAdjustmentLineItem(order.LineNameAdjustment)
	if err != nil {
		return nil, err
	}
	lines = append(lines, shipping, adjustment)

	if err = child.Pack(lines, 0); err != nil {
		return nil, err
	}
	if err = child.BeginPayment(time.Now(), policy.RentalDays, policy.Location); err != nil {
		return nil, err
	}
	return child, nil
}
