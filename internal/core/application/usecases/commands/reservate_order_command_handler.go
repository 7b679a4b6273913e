package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// ReservateOrderCommandHandler books a visit: it creates the order in
// Reservated status, takes a visit slot (borrowing from the opposite gender
// pool when needed) and attaches the requested coupon through the ledger.
//
// After commit the renter gets a confirmation message, and renters matching
// the regional program window get an invitation message too.
type ReservateOrderCommandHandler struct {
	uowFactory ReservationUoWFactory
	ledger     services.CouponLedger
	window     services.ProgramWindow
	notifier   ports.NotificationClient
	renderer   ports.MessageRenderer
	sender     ports.MessageSender
	logger     *slog.Logger
}

// NewReservateOrderCommandHandler creates a handler for visit booking.
func NewReservateOrderCommandHandler(
	uowFactory ReservationUoWFactory,
	ledger services.CouponLedger,
	window services.ProgramWindow,
	notifier ports.NotificationClient,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) ReservateOrderCommandHandler {
	return ReservateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		window:     window,
		notifier:   notifier,
		renderer:   renderer,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the booking command.
func (h *ReservateOrderCommandHandler) Handle(ctx context.Context, cmd ReservateOrderCommand) error {
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

	renter, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.Online(), cmd.Agent(), cmd.Purpose())
	if err != nil {
		return err
	}
	if err = newOrder.Reservate(cmd.VisitAt()); err != nil {
		return err
	}

	slotKey := cmd.VisitAt().Format(visitSlotLayout)
	if err = takeVisitSlot(ctx, uow.BookingRepository(), slotKey, renter.Gender()); err != nil {
		return err
	}

	if cmd.CouponID() != nil {
		coupon, err := uow.CouponRepository().Get(ctx, *cmd.CouponID())
		if err != nil {
			return err
		}
		holders, err := uow.OrderRepository().FindHoldersOfCoupon(ctx, coupon.ID())
		if err != nil {
			return err
		}
		if err = h.ledger.Transfer(coupon, holders, newOrder); err != nil {
			return err
		}
		for _, holder := range holders {
			if err = uow.OrderRepository().Update(ctx, holder); err != nil {
				return err
			}
		}
		if err = uow.CouponRepository().Update(ctx, coupon); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, newOrder, order.None, order.Reservated)
	sendMessage(ctx, h.logger, h.renderer, h.sender,
		ports.MsgReservationConfirmed, renter.Phone(), map[string]any{
			"name":     renter.Name(),
			"visit_at": cmd.VisitAt().Format(visitSlotLayout),
		})

	if h.window.Matches(renter, cmd.Purpose(), cmd.CouponID() != nil, time.Now()) {
		sendMessage(ctx, h.logger, h.renderer, h.sender,
			ports.MsgProgramInvite, renter.Phone(), map[string]any{
				"name": renter.Name(),
			})
	}

	return nil
}
