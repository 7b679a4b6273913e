package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
)

// CheckInOrderCommandHandler marks the renter's arrival: Reservated -> Box.
type CheckInOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewCheckInOrderCommandHandler creates a handler for renter check-in.
func NewCheckInOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.NotificationClient, logger *slog.Logger,
) CheckInOrderCommandHandler {
	return CheckInOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the check-in command.
func (h *CheckInOrderCommandHandler) Handle(ctx context.Context, cmd CheckInOrderCommand) error {
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
	if err = aggregate.CheckIn(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Reservated, order.Box)
	return nil
}
