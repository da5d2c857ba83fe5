package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/deathchest/internal/application"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/sirupsen/logrus"
)

// Host plays the server side of the plugin contract: it owns the players,
// fires events at the listener and applies the outcomes the way a game
// server would.
type Host struct {
	listener *application.Listener
	logger   logrus.FieldLogger

	mu      sync.Mutex
	players map[string]*Player
	ground  []domain.Item
}

func NewHost(listener *application.Listener, logger logrus.FieldLogger) *Host {
	if logger == nil {
		logger = logrus.New()
	}

	return &Host{
		listener: listener,
		logger:   logger,
		players:  map[string]*Player{},
	}
}

// Join connects a player. Joining twice returns the existing player.
func (h *Host) Join(name string, id domain.PlayerID) *Player {
	h.mu.Lock()
	defer h.mu.Unlock()

	if player, ok := h.players[name]; ok {
		return player
	}
	if id.IsZero() {
		id = OfflinePlayerID(name)
	}

	player := NewPlayer(id, name)
	h.players[name] = player
	return player
}

func (h *Host) Player(name string) (*Player, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	player, ok := h.players[name]
	return player, ok
}

// Ground lists the items dropped in the world so far.
func (h *Host) Ground() []domain.Item {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Item, len(h.ground))
	copy(out, h.ground)
	return out
}

// Kill fires a death event. Inventory contents always leave the player;
// they reach the ground unless the listener suppressed the drops.
func (h *Host) Kill(ctx context.Context, player *Player) application.DeathOutcome {
	outcome := h.listener.OnPlayerDeath(ctx, application.DeathEvent{Player: player})

	h.closeView(ctx, player)
	dropped := player.clearInventory()
	if !outcome.SuppressDrops {
		h.mu.Lock()
		h.ground = append(h.ground, dropped...)
		h.mu.Unlock()
	}

	h.logger.WithFields(logrus.Fields{
		"player":     player.Name(),
		"suppressed": outcome.SuppressDrops,
		"dropped":    len(dropped),
	}).Debug("player died")
	return outcome
}

func (h *Host) Interact(ctx context.Context, player *Player, action application.InteractAction, loc domain.BlockLocation) application.InteractOutcome {
	return h.listener.OnPlayerInteract(ctx, application.InteractEvent{
		Player:   player,
		Action:   action,
		Location: loc,
	})
}

// Click fires a click on the player's open view and, when the listener lets
// it through, performs the default item movement.
func (h *Host) Click(ctx context.Context, player *Player, target domain.ClickTarget, slot int, action domain.ClickAction) (application.ClickOutcome, error) {
	view := player.View()
	if view == nil {
		return application.ClickOutcome{}, fmt.Errorf("player %s has no open container", player.Name())
	}

	outcome := h.listener.OnInventoryClick(ctx, application.ClickEvent{
		Player: player,
		View:   view.ID,
		Target: target,
		Slot:   domain.SlotIndex(slot),
		Action: action,
	})

	if outcome.SetCursor {
		player.setCursor(outcome.Cursor)
	}
	if outcome.Cancel {
		return outcome, nil
	}

	return outcome, h.applyDefault(player, view, target, slot, action)
}

func (h *Host) applyDefault(player *Player, view *domain.VirtualContainer, target domain.ClickTarget, slot int, action domain.ClickAction) error {
	switch target {
	case domain.TargetClaim:
		index := domain.SlotIndex(slot)
		if !action.IsBulkMove() || !view.Occupied(index) {
			return nil
		}
		item := view.Item(index)
		if _, err := player.addItem(item); err != nil {
			return err
		}
		view.Clear(index)
	case domain.TargetPlayer:
		switch {
		case action.IsPickup() && player.Cursor() == nil:
			item := player.Slot(slot)
			if item == nil {
				return nil
			}
			player.setCursor(item)
			return player.SetSlot(slot, nil)
		case action.IsPlacement() && player.Cursor() != nil:
			cursor := player.Cursor()
			previous := player.Slot(slot)
			if err := player.SetSlot(slot, cursor); err != nil {
				return err
			}
			player.setCursor(previous)
		}
	}
	return nil
}

// Close closes the player's open view and fires the close event. Any item
// held on the cursor returns to the inventory.
func (h *Host) Close(ctx context.Context, player *Player) {
	h.closeView(ctx, player)

	if cursor := player.Cursor(); cursor != nil {
		if _, err := player.addItem(cursor); err != nil {
			h.mu.Lock()
			h.ground = append(h.ground, cursor)
			h.mu.Unlock()
		}
		player.setCursor(nil)
	}
}

func (h *Host) Quit(ctx context.Context, player *Player) {
	h.Close(ctx, player)
	h.listener.OnPlayerQuit(ctx, player.ID())

	h.mu.Lock()
	delete(h.players, player.Name())
	h.mu.Unlock()
}

// Shutdown disables the listener and returns the number of sessions it
// dropped.
func (h *Host) Shutdown() int {
	return h.listener.Shutdown()
}

func (h *Host) closeView(ctx context.Context, player *Player) {
	view := player.closeView()
	if view == nil {
		return
	}
	h.listener.OnInventoryClose(ctx, application.CloseEvent{Player: player, Container: view.ID})
}
