package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/domain/model/booking"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/user"
	"rental/internal/core/ports"
)

// visitSlotLayout is the canonical string form of a visit slot key.
const visitSlotLayout = "2006-01-02 15:04"

// notifyTransition posts the status change to the monitoring endpoint.
// Runs after commit; failures are logged, never returned. Orders flagged
// ignore are skipped entirely.
func notifyTransition(
	ctx context.Context, logger *slog.Logger, client ports.NotificationClient,
	o *order.Order, from, to order.Status,
) {
	if client == nil || o.Ignore() {
		return
	}
	if err := client.Post(ctx, o.ID(), from, to); err != nil {
		logger.Warn("status notification failed",
			"order_id", o.ID(), "from", from.String(), "to", to.String(), "error", err)
	}
}

// sendMessage renders a named template and dispatches it to the phone.
// Runs after commit; failures are logged, never returned.
func sendMessage(
	ctx context.Context, logger *slog.Logger,
	renderer ports.MessageRenderer, sender ports.MessageSender,
	name, phone string, data map[string]any,
) {
	if renderer == nil || sender == nil || phone == "" {
		return
	}
	text, err := renderer.Render(name, data)
	if err != nil {
		logger.Warn("message render failed", "template", name, "error", err)
		return
	}
	if err := sender.Send(ctx, phone, text); err != nil {
		logger.Warn("message send failed", "template", name, "phone", phone, "error", err)
	}
}

// takeVisitSlot reserves one slot for the visit datetime and gender, borrowing
// from the opposite pool when the renter's own pool is exhausted. Both pools
// are row-locked for the rest of the transaction.
func takeVisitSlot(
	ctx context.Context, repo ports.BookingRepository, at string, gender user.Gender,
) error {
	slot, err := repo.GetForUpdate(ctx, at, gender)
	if err != nil {
		return err
	}

	if err := slot.Take(); err == nil {
		return repo.Update(ctx, slot)
	}

	opposite, err := repo.GetForUpdate(ctx, at, oppositeGender(gender))
	if err != nil {
		return booking.ErrNoSlotAvailable
	}
	if err := slot.TakeOrBorrow(opposite); err != nil {
		return err
	}
	if err := repo.Update(ctx, opposite); err != nil {
		return err
	}
	return repo.Update(ctx, slot)
}

// releaseVisitSlot frees one slot for the visit datetime and gender, used
// when a visit is rescheduled or cancelled. A missing pool is not an error.
func releaseVisitSlot(
	ctx context.Context, repo ports.BookingRepository, at string, gender user.Gender,
) error {
	slot, err := repo.GetForUpdate(ctx, at, gender)
	if err != nil {
		return nil
	}
	slot.Release()
	return repo.Update(ctx, slot)
}

func oppositeGender(g user.Gender) user.Gender {
	if g == user.Male {
		return user.Female
	}
	return user.Male
}
