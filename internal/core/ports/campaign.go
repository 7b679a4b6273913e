package ports

import (
	"context"
	"time"
)

// CampaignClient relays booking changes to the external employment-support
// campaign service. Best effort only: unavailability must never block a
// transition.
type CampaignClient interface {
	RelayScheduleChange(ctx context.Context, orderID int64, visitAt time.Time) error
}
