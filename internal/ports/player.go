package ports

import "github.com/bnema/deathchest/internal/domain"

// Player is the live host handle for a connected player.
type Player interface {
	ID() domain.PlayerID
	Name() string
	// InventoryContents returns every addressable slot, nil for empty ones.
	InventoryContents() []domain.Item
	SendMessage(text string)
	OpenContainer(container *domain.VirtualContainer) error
}
