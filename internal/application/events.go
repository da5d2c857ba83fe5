package application

import (
	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
)

type DeathEvent struct {
	Player ports.Player
}

type DeathOutcome struct {
	// SuppressDrops is true only once the items are safely persisted.
	SuppressDrops bool
	SavedSlots    int
}

type InteractAction string

const (
	InteractRightClickBlock InteractAction = "right_click_block"
	InteractLeftClickBlock  InteractAction = "left_click_block"
	InteractRightClickAir   InteractAction = "right_click_air"
	InteractLeftClickAir    InteractAction = "left_click_air"
	InteractPhysical        InteractAction = "physical"
)

type InteractEvent struct {
	Player   ports.Player
	Action   InteractAction
	Location domain.BlockLocation
}

type InteractOutcome struct {
	Cancel  bool
	Session bool
}

// ClickEvent is one click while the player has a container view open. View
// is the top container of that view; Target tells which side was clicked.
type ClickEvent struct {
	Player ports.Player
	View   domain.ContainerID
	Target domain.ClickTarget
	Slot   domain.SlotIndex
	Action domain.ClickAction
}

type ClickOutcome struct {
	Cancel bool
	// Cursor is meaningful only when SetCursor is true.
	Cursor    domain.Item
	SetCursor bool
}

type CloseEvent struct {
	Player    ports.Player
	Container domain.ContainerID
}
