package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// lineNameRefund is the display name of the stage-3 payback line.
const lineNameRefund = "환불"

// PaybackOrderCommandHandler refunds a running rental: Rental -> Payback.
// The refund line carries the negated rental price minus the withheld charge,
// and a coupon spent on the order becomes reserved again so the renter can
// use it another day.
type PaybackOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	calc       services.LateFeeCalculator
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewPaybackOrderCommandHandler creates a handler for the payback transition.
func NewPaybackOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	calc services.LateFeeCalculator,
	notifier ports.NotificationClient,
	logger *slog.Logger,
) PaybackOrderCommandHandler {
	return PaybackOrderCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the payback command.
func (h *PaybackOrderCommandHandler) Handle(ctx context.Context, cmd PaybackOrderCommand) error {
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

	refundAmount := -(h.calc.RentalPrice(aggregate) - cmd.RefundCharge())
	if refundAmount > 0 {
		refundAmount = 0
	}
	refund, err := order.NewRefundLineItem(lineNameRefund, refundAmount, cmd.PayWith())
	if err != nil {
		return err
	}

	releasedIDs := aggregate.ClothesIDs()
	if err = aggregate.PaybackWith(refund); err != nil {
		return err
	}

	if aggregate.CouponID() != nil {
		attached, err := uow.CouponRepository().Get(ctx, *aggregate.CouponID())
		if err != nil {
			return err
		}
		if err = attached.RevertToReserved(); err != nil {
			return err
		}
		if err = uow.CouponRepository().Update(ctx, attached); err != nil {
			return err
		}
	}

	for _, id := range releasedIDs {
		item, err := uow.ClothesRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		item.MarkStatus(order.Payback)
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

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Rental, order.Payback)
	return nil
}
