package ports

import (
	"context"

	"rental/internal/core/domain/model/order"
)

// NotificationClient posts order status changes to the external monitoring
// endpoint. Calls happen only after the transition's transaction committed;
// failures are logged by the caller and never affect the transition outcome.
type NotificationClient interface {
	Post(ctx context.Context, orderID int64, from, to order.Status) error
}
