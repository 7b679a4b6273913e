package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// Names of the fee and waiver lines appended at return time.
const (
	lineNameExtensionFee       = "연장료"
	lineNameOverdueFee         = "연체료"
	lineNameLateFeeWaiver      = "연체료 할인"
	lineNameCompensation       = "배상금"
	lineNameCompensationWaiver = "배상금 할인"
)

// ReturnRentalCommandHandler closes the rental: Rental -> Returned.
//
// Fee lines are appended in a fixed order so receipts read the same way
// every time: extension fee, overdue fee, late-fee waiver, compensation,
// compensation waiver. Zero-amount entries are skipped entirely.
type ReturnRentalCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	calc       services.LateFeeCalculator
	notifier   ports.NotificationClient
	renderer   ports.MessageRenderer
	sender     ports.MessageSender
	logger     *slog.Logger
}

// NewReturnRentalCommandHandler creates a handler for the rental return.
func NewReturnRentalCommandHandler(
	uowFactory FulfillmentUoWFactory,
	calc services.LateFeeCalculator,
	notifier ports.NotificationClient,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) ReturnRentalCommandHandler {
	return ReturnRentalCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
		notifier:   notifier,
		renderer:   renderer,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the return command.
func (h *ReturnRentalCommandHandler) Handle(ctx context.Context, cmd ReturnRentalCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	renter, err := uow.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil {
		return err
	}

	var attached *coupon.Coupon
	if aggregate.CouponID() != nil {
		attached, err = uow.CouponRepository().Get(ctx, *aggregate.CouponID())
		if err != nil {
			return err
		}
	}

	feeLines, err := buildReturnFeeLines(h.calc, aggregate, attached, cmd.charges())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteReturn(
		cmd.ReturnedAt(), nil, feeLines, cmd.LateFeePayWith(), cmd.CompensationPayWith(),
	); err != nil {
		return err
	}

	for _, id := range aggregate.ClothesIDs() {
		item, err := uow.ClothesRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		item.MarkStatus(order.Returned)
		if err = uow.ClothesRepository().Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Rental, order.Returned)

	template := ports.MsgReturnVisit
	if cmd.ByMail() {
		template = ports.MsgReturnMail
	}
	sendMessage(ctx, h.logger, h.renderer, h.sender, template, renter.Phone(), map[string]any{
		"name": renter.Name(),
	})

	return nil
}

// returnCharges carries the staff-entered charge and waiver amounts of a
// return, shared by the full and partial return handlers.
type returnCharges struct {
	returnedAt          time.Time
	lateFeeWaiver       int
	lateFeePayWith      string
	compensation        int
	compensationName    string
	compensationWaiver  int
	compensationPayWith string
}

func (c ReturnRentalCommand) charges() returnCharges {
	return returnCharges{
		returnedAt:          c.returnedAt,
		lateFeeWaiver:       c.lateFeeWaiver,
		lateFeePayWith:      c.lateFeePayWith,
		compensation:        c.compensation,
		compensationName:    c.compensationName,
		compensationWaiver:  c.compensationWaiver,
		compensationPayWith: c.compensationPayWith,
	}
}

// buildReturnFeeLines computes the stage-1 and stage-2 lines for a return at
// the given datetime. At most one of the extension and overdue fees is
// non-zero for any given return.
func buildReturnFeeLines(
	calc services.LateFeeCalculator,
	aggregate *order.Order,
	attached *coupon.Coupon,
	charges returnCharges,
) ([]*order.LineItem, error) {
	var lines []*order.LineItem

	if unit, total, _ := calc.ExtensionFee(aggregate, attached, charges.returnedAt); total > 0 {
		li, err := order.NewFeeLineItem(order.StageLateFee, lineNameExtensionFee, unit, total, charges.lateFeePayWith)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	if unit, total, _ := calc.OverdueFee(aggregate, attached, charges.returnedAt); total > 0 {
		li, err := order.NewFeeLineItem(order.StageLateFee, lineNameOverdueFee, unit, total, charges.lateFeePayWith)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	if charges.lateFeeWaiver > 0 {
		li, err := order.NewWaiverLineItem(order.StageLateFee, lineNameLateFeeWaiver, charges.lateFeeWaiver, charges.lateFeePayWith)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	if charges.compensation > 0 {
		name := charges.compensationName
		if name == "" {
			name = lineNameCompensation
		}
		li, err := order.NewFeeLineItem(
			order.StageCompensation, name, charges.compensation, charges.compensation, charges.compensationPayWith)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	if charges.compensationWaiver > 0 {
		li, err := order.NewWaiverLineItem(
			order.StageCompensation, lineNameCompensationWaiver, charges.compensationWaiver, charges.compensationPayWith)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}

	return lines, nil
}
