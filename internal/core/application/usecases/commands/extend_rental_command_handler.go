package commands

import (
	"context"
	"time"

	"rental/internal/core/domain/services"
)

// ExtendRentalCommandHandler applies additional rental days before payment.
// No status changes and no messages go out; the deadline and line prices on
// the order simply move.
type ExtendRentalCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewExtendRentalCommandHandler creates a handler for rental extension.
func NewExtendRentalCommandHandler(uowFactory OrderUoWFactory, policy services.Policy) ExtendRentalCommandHandler {
	return ExtendRentalCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the extension command.
func (h *ExtendRentalCommandHandler) Handle(ctx context.Context, cmd ExtendRentalCommand) error {
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
	if err = aggregate.Extend(
		cmd.Days(), time.Now(), h.policy.RentalDays, h.policy.ExtensionRatePercent, h.policy.Location,
	); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
