package realtime

import (
	"context"

	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/logger"
)

// Broadcaster is the publish interface the game engines depend on. It is
// injected, never looked up globally, and both operations are best-effort:
// the caller's transaction is already committed when they run.
type Broadcaster interface {
	// PublishOutcome sends a caseOpened event to every connected observer.
	PublishOutcome(ctx context.Context, wonItems []domain.Item, profile domain.PublicProfile, caseImage string)

	// PublishAccountUpdate sends a userDataUpdated event to the user's
	// private room only.
	PublishAccountUpdate(ctx context.Context, userID string, balance, xp int64, level int)
}

// HubBroadcaster publishes engine outcomes onto the SSE hub.
type HubBroadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a Broadcaster backed by the given hub
func NewBroadcaster(hub *Hub) *HubBroadcaster {
	return &HubBroadcaster{hub: hub}
}

// PublishOutcome implements Broadcaster
func (b *HubBroadcaster) PublishOutcome(ctx context.Context, wonItems []domain.Item, profile domain.PublicProfile, caseImage string) {
	log := logger.FromContext(ctx)

	b.hub.Broadcast(EventTypeCaseOpened, CaseOpenedPayload{
		WinningItems: wonItems,
		User:         profile,
		CaseImage:    caseImage,
	})

	log.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeCaseOpened,
		"user_id", profile.ID,
		"items", len(wonItems),
		"observers", b.hub.ClientCount())
}

// PublishAccountUpdate implements Broadcaster
func (b *HubBroadcaster) PublishAccountUpdate(ctx context.Context, userID string, balance, xp int64, level int) {
	log := logger.FromContext(ctx)

	b.hub.SendToUser(userID, EventTypeUserDataUpdated, UserDataUpdatedPayload{
		WalletBalance: balance,
		XP:            xp,
		Level:         level,
	})

	log.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeUserDataUpdated,
		"user_id", userID)
}
