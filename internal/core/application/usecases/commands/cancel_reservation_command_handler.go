package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/ports"
)

// CancelReservationCommandHandler cancels a booked visit: the visit slot is
// released, any attached coupon goes back to its owner unharmed and the order
// row is deleted. The renter gets a cancellation message after commit.
type CancelReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
	renderer   ports.MessageRenderer
	sender     ports.MessageSender
	logger     *slog.Logger
}

// NewCancelReservationCommandHandler creates a handler for reservation cancellation.
func NewCancelReservationCommandHandler(
	uowFactory ReservationUoWFactory,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) CancelReservationCommandHandler {
	return CancelReservationCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h *CancelReservationCommandHandler) Handle(ctx context.Context, cmd CancelReservationCommand) error {
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
	if err = aggregate.Status().ValidateCancel(); err != nil {
		return err
	}

	renter, err := uow.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil {
		return err
	}

	if visit := aggregate.RentalDate(); visit != nil {
		key := visit.Format(visitSlotLayout)
		if err = releaseVisitSlot(ctx, uow.BookingRepository(), key, renter.Gender()); err != nil {
			return err
		}
	}

	// The coupon keeps its Reserved status so the renter can rebook with it.
	// Only the order side of the link dies with the row.
	if err = uow.OrderRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sendMessage(ctx, h.logger, h.renderer, h.sender,
		ports.MsgReservationCancelled, renter.Phone(), map[string]any{
			"name": renter.Name(),
		})

	return nil
}
