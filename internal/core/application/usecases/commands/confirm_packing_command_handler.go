package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// ConfirmPackingCommandHandler opens the payment window: Boxed -> Payment.
// Both return dates land on the end of the day the policy's rental period
// from now.
type ConfirmPackingCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewConfirmPackingCommandHandler creates a handler for packing confirmation.
func NewConfirmPackingCommandHandler(
	uowFactory OrderUoWFactory, policy services.Policy,
	notifier ports.NotificationClient, logger *slog.Logger,
) ConfirmPackingCommandHandler {
	return ConfirmPackingCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmPackingCommandHandler) Handle(ctx context.Context, cmd ConfirmPackingCommand) error {
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
	if err = aggregate.BeginPayment(time.Now(), h.policy.RentalDays, h.policy.Location); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Boxed, order.Payment)
	return nil
}
