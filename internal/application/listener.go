package application

import (
	"context"

	"github.com/bnema/deathchest/internal/domain"
)

// Listener is the single entry point a host registers for its events.
type Listener struct {
	capture *CaptureService
	claims  *ClaimService
}

func NewListener(capture *CaptureService, claims *ClaimService) *Listener {
	return &Listener{capture: capture, claims: claims}
}

func (l *Listener) OnPlayerDeath(ctx context.Context, event DeathEvent) DeathOutcome {
	return l.capture.HandleDeath(ctx, event)
}

func (l *Listener) OnPlayerInteract(ctx context.Context, event InteractEvent) InteractOutcome {
	return l.claims.HandleInteract(ctx, event)
}

func (l *Listener) OnInventoryClick(ctx context.Context, event ClickEvent) ClickOutcome {
	return l.claims.HandleClick(ctx, event)
}

func (l *Listener) OnInventoryClose(ctx context.Context, event CloseEvent) {
	l.claims.HandleClose(ctx, event)
}

func (l *Listener) OnPlayerQuit(ctx context.Context, id domain.PlayerID) {
	l.claims.HandleQuit(ctx, id)
}

func (l *Listener) Shutdown() int {
	return l.claims.Shutdown()
}

func (l *Listener) Claims() *ClaimService {
	return l.claims
}
