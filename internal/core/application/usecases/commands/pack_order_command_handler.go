package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// PackOrderCommandHandler fixes the box contents: Box -> Boxed.
//
// Every selected code must resolve to an inventory item; one unknown code
// fails the whole command so the box is never half-priced. Pricing runs
// through the discount engine, which also writes a corrected foot size back
// onto the renter profile when a fitted pair of shoes disagrees with it.
type PackOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	engine     services.DiscountEngine
	sale       services.SaleComputer
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewPackOrderCommandHandler creates a handler for box packing.
func NewPackOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	engine services.DiscountEngine,
	sale services.SaleComputer,
	notifier ports.NotificationClient,
	logger *slog.Logger,
) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		sale:       sale,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the packing command.
func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) error {
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

	items := make([]*clothes.Clothes, 0, len(cmd.ClothesCodes()))
	for _, code := range cmd.ClothesCodes() {
		item, err := uow.ClothesRepository().GetByCode(ctx, code)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	footBefore := renter.Foot()
	lines, err := h.engine.BuildRentalLines(items, renter)
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

	visitCount, err := uow.OrderRepository().CountRentalsByUser(ctx, aggregate.UserID())
	if err != nil {
		return err
	}
	// The visit being packed counts too.
	visitCount++

	lines, saleDelta, err := h.engine.Apply(lines, attached, visitCount, h.sale)
	if err != nil {
		return err
	}

	if err = aggregate.Pack(lines, saleDelta); err != nil {
		return err
	}

	for _, item := range items {
		item.MarkStatus(order.Payment)
		if err = uow.ClothesRepository().Update(ctx, item); err != nil {
			return err
		}
	}
	if renter.Foot() != footBefore {
		if err = uow.UserRepository().Update(ctx, renter); err != nil {
			return err
		}
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Box, order.Boxed)
	return nil
}
