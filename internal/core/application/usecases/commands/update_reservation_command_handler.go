package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// UpdateReservationCommandHandler reschedules a visit: the old slot is
// released, a slot is taken at the new datetime and the order's rental date
// moves. A coupon named on the command is re-transferred onto the order
// through the ledger. The campaign service is told about the change on a
// best-effort basis, and the renter gets a reschedule message.
type UpdateReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
	ledger     services.CouponLedger
	campaign   ports.CampaignClient
	renderer   ports.MessageRenderer
	sender     ports.MessageSender
	logger     *slog.Logger
}

// NewUpdateReservationCommandHandler creates a handler for visit rescheduling.
func NewUpdateReservationCommandHandler(
	uowFactory ReservationUoWFactory,
	ledger services.CouponLedger,
	campaign ports.CampaignClient,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) UpdateReservationCommandHandler {
	return UpdateReservationCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		campaign:   campaign,
		renderer:   renderer,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the reschedule command.
func (h *UpdateReservationCommandHandler) Handle(ctx context.Context, cmd UpdateReservationCommand) error {
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

	oldVisit := aggregate.RentalDate()
	if err = aggregate.UpdateReservation(cmd.VisitAt()); err != nil {
		return err
	}

	if oldVisit != nil {
		oldKey := oldVisit.Format(visitSlotLayout)
		if err = releaseVisitSlot(ctx, uow.BookingRepository(), oldKey, renter.Gender()); err != nil {
			return err
		}
	}
	newKey := cmd.VisitAt().Format(visitSlotLayout)
	if err = takeVisitSlot(ctx, uow.BookingRepository(), newKey, renter.Gender()); err != nil {
		return err
	}

	if cmd.CouponID() != nil {
		attached, err := uow.CouponRepository().Get(ctx, *cmd.CouponID())
		if err != nil {
			return err
		}
		holders, err := uow.OrderRepository().FindHoldersOfCoupon(ctx, attached.ID())
		if err != nil {
			return err
		}
		if err = h.ledger.Transfer(attached, holders, aggregate); err != nil {
			return err
		}
		for _, holder := range holders {
			if holder.ID() == aggregate.ID() {
				continue
			}
			if err = uow.OrderRepository().Update(ctx, holder); err != nil {
				return err
			}
		}
		if err = uow.CouponRepository().Update(ctx, attached); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.campaign != nil {
		if err = h.campaign.RelayScheduleChange(ctx, aggregate.ID(), cmd.VisitAt()); err != nil {
			h.logger.Warn("campaign schedule relay failed", "order_id", aggregate.ID(), "error", err)
		}
	}
	sendMessage(ctx, h.logger, h.renderer, h.sender,
		ports.MsgReservationRescheduled, renter.Phone(), map[string]any{
			"name":     renter.Name(),
			"visit_at": cmd.VisitAt().Format(visitSlotLayout),
		})

	return nil
}
