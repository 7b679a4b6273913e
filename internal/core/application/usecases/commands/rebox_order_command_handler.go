package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
)

// ReboxOrderCommandHandler undoes the packing: Payment -> Box. The released
// items are flagged CancelBox so the racks show they came out of an undone
// box rather than a return.
type ReboxOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewReboxOrderCommandHandler creates a handler for the rebox transition.
func NewReboxOrderCommandHandler(
	uowFactory FulfillmentUoWFactory, notifier ports.NotificationClient, logger *slog.Logger,
) ReboxOrderCommandHandler {
	return ReboxOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the rebox command.
func (h *ReboxOrderCommandHandler) Handle(ctx context.Context, cmd ReboxOrderCommand) error {
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

	// Collect the item ids before Rebox drops the lines.
	releasedIDs := aggregate.ClothesIDs()

	if err = aggregate.Rebox(); err != nil {
		return err
	}

	for _, id := range releasedIDs {
		item, err := uow.ClothesRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		item.MarkStatus(order.CancelBox)
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

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Payment, order.Box)
	return nil
}
