package commands

import (
	"context"
	"fmt"
	"log/slog"

	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// StartRentalCommandHandler hands the box over: Payment -> Rental.
//
// An attached coupon is spent here. Coupons linked to a capped campaign event
// are refused once the event's usage limit is reached; the renter keeps the
// coupon and pays normally only after staff detach it explicitly, so the cap
// breach surfaces as an error rather than a silent fallback.
//
// After commit the renter gets the rental-start message with the return
// deadline, and when a packed item carries a donation note, the note of the
// outermost such item (lowest category rank) follows in a second message.
type StartRentalCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.Policy
	notifier   ports.NotificationClient
	renderer   ports.MessageRenderer
	sender     ports.MessageSender
	logger     *slog.Logger
}

// NewStartRentalCommandHandler creates a handler for the rental handover.
func NewStartRentalCommandHandler(
	uowFactory FulfillmentUoWFactory,
	policy services.Policy,
	notifier ports.NotificationClient,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) StartRentalCommandHandler {
	return StartRentalCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		renderer:   renderer,
		sender:     sender,
		logger:     logger,
	}
}

// Handle processes the handover command.
func (h *StartRentalCommandHandler) Handle(ctx context.Context, cmd StartRentalCommand) error {
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

	if aggregate.CouponID() != nil {
		attached, err := uow.CouponRepository().Get(ctx, *aggregate.CouponID())
		if err != nil {
			return err
		}
		if attached.Event() != "" && h.policy.CouponEventLimit >= 0 {
			used, err := uow.CouponRepository().CountUsedByEvent(ctx, attached.Event())
			if err != nil {
				return err
			}
			if used >= h.policy.CouponEventLimit {
				return errs.NewValueIsInvalidErrorWithCause("coupon event limit",
					fmt.Errorf("event %q already used %d times", attached.Event(), used))
			}
		}
		if err = attached.MarkUsed(); err != nil {
			return err
		}
		if err = uow.CouponRepository().Update(ctx, attached); err != nil {
			return err
		}
	}

	if err = aggregate.StartRental(cmd.PayWith(), cmd.Body()); err != nil {
		return err
	}

	if cmd.Body() != nil && !aggregate.Agent() {
		renter.SetMeasurements(cmd.Body().Height, cmd.Body().Weight, cmd.Body().Chest, cmd.Body().Waist)
		if err = uow.UserRepository().Update(ctx, renter); err != nil {
			return err
		}
	}

	items := make([]*clothes.Clothes, 0, len(aggregate.ClothesIDs()))
	for _, id := range aggregate.ClothesIDs() {
		item, err := uow.ClothesRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		item.MarkStatus(order.Rental)
		if err = uow.ClothesRepository().Update(ctx, item); err != nil {
			return err
		}
		items = append(items, item)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyTransition(ctx, h.logger, h.notifier, aggregate, order.Payment, order.Rental)

	targetDate := ""
	if aggregate.TargetDate() != nil {
		targetDate = aggregate.TargetDate().Format("2006-01-02")
	}
	sendMessage(ctx, h.logger, h.renderer, h.sender,
		ports.MsgRentalStarted, renter.Phone(), map[string]any{
			"name":        renter.Name(),
			"target_date": targetDate,
		})

	if donated := pickDonatedItem(items); donated != nil {
		sendMessage(ctx, h.logger, h.renderer, h.sender,
			ports.MsgDonorStory, renter.Phone(), map[string]any{
				"name":  renter.Name(),
				"donor": donated.DonorName(),
				"story": donated.DonorStory(),
			})
	}

	return nil
}

// pickDonatedItem returns the donated item with the lowest category rank,
// i.e. the outermost garment, or nil when nothing in the box was donated.
func pickDonatedItem(items []*clothes.Clothes) *clothes.Clothes {
	var picked *clothes.Clothes
	for _, item := range items {
		if item.DonorStory() == "" {
			continue
		}
		if picked == nil || item.Category().Rank() < picked.Category().Rank() {
			picked = item
		}
	}
	return picked
}
