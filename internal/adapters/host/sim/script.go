package sim

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/deathchest/internal/application"
	"github.com/bnema/deathchest/internal/domain"
)

const (
	EventJoin     = "join"
	EventGive     = "give"
	EventDeath    = "death"
	EventInteract = "interact"
	EventClick    = "click"
	EventClose    = "close"
	EventQuit     = "quit"
	EventShutdown = "shutdown"
)

var ErrUnknownEvent = errors.New("unknown script event")

// Location is the script form of a block location.
type Location struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// Step is one line of a replay script.
type Step struct {
	Event    string    `json:"event"`
	Player   string    `json:"player,omitempty"`
	ID       string    `json:"id,omitempty"`
	Slot     int       `json:"slot,omitempty"`
	Item     *Item     `json:"item,omitempty"`
	Action   string    `json:"action,omitempty"`
	Target   string    `json:"target,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type StepResult struct {
	Line   int
	Event  string
	Player string
	Result string
}

// Replay reads one JSON step per line and runs them in order. Blank lines
// and lines starting with # are skipped. The first failing step stops the
// replay.
func (h *Host) Replay(ctx context.Context, r io.Reader) ([]StepResult, error) {
	scanner := bufio.NewScanner(r)
	results := make([]StepResult, 0)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var step Step
		if err := json.Unmarshal([]byte(raw), &step); err != nil {
			return results, fmt.Errorf("line %d: decode step: %w", line, err)
		}

		result, err := h.Run(ctx, step)
		if err != nil {
			return results, fmt.Errorf("line %d: %s: %w", line, step.Event, err)
		}

		results = append(results, StepResult{
			Line:   line,
			Event:  step.Event,
			Player: step.Player,
			Result: result,
		})
	}

	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("read script: %w", err)
	}

	return results, nil
}

// Run executes a single step and describes what happened.
func (h *Host) Run(ctx context.Context, step Step) (string, error) {
	if step.Event == EventShutdown {
		return fmt.Sprintf("%d session(s) closed", h.Shutdown()), nil
	}

	if step.Event == EventJoin {
		id := domain.NilPlayerID
		if step.ID != "" {
			parsed, err := domain.ParsePlayerID(step.ID)
			if err != nil {
				return "", err
			}
			id = parsed
		}
		player := h.Join(step.Player, id)
		return fmt.Sprintf("joined as %s", player.ID()), nil
	}

	player, ok := h.Player(step.Player)
	if !ok {
		return "", fmt.Errorf("player %q is not online", step.Player)
	}

	switch step.Event {
	case EventGive:
		if step.Item == nil {
			return "", fmt.Errorf("%w: item is required", ErrInvalidItem)
		}
		if err := step.Item.Validate(); err != nil {
			return "", err
		}
		if err := player.SetSlot(step.Slot, *step.Item); err != nil {
			return "", err
		}
		return fmt.Sprintf("slot %d = %s", step.Slot, step.Item), nil

	case EventDeath:
		outcome := h.Kill(ctx, player)
		if outcome.SuppressDrops {
			return fmt.Sprintf("saved %d slot(s), drops suppressed", outcome.SavedSlots), nil
		}
		return "drops fell to the ground", nil

	case EventInteract:
		if step.Location == nil {
			return "", errors.New("location is required")
		}
		action := application.InteractAction(step.Action)
		if action == "" {
			action = application.InteractRightClickBlock
		}
		outcome := h.Interact(ctx, player, action, domain.BlockLocation{
			World: step.Location.World,
			X:     step.Location.X,
			Y:     step.Location.Y,
			Z:     step.Location.Z,
		})
		switch {
		case outcome.Session:
			return fmt.Sprintf("claim chest opened with %d item(s)", player.View().Count()), nil
		case outcome.Cancel:
			return "interaction cancelled", nil
		default:
			return "interaction passed through", nil
		}

	case EventClick:
		target := domain.ClickTarget(step.Target)
		if target == "" {
			target = domain.TargetClaim
		}
		outcome, err := h.Click(ctx, player, target, step.Slot, domain.ClickAction(step.Action))
		if err != nil {
			return "", err
		}
		switch {
		case outcome.SetCursor:
			return fmt.Sprintf("withdrew %v", outcome.Cursor), nil
		case outcome.Cancel:
			return "click cancelled", nil
		default:
			return "click allowed", nil
		}

	case EventClose:
		h.Close(ctx, player)
		return "view closed", nil

	case EventQuit:
		h.Quit(ctx, player)
		return "left the game", nil

	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEvent, step.Event)
	}
}
