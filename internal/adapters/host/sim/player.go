package sim

import (
	"errors"
	"sync"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/google/uuid"
)

// InventorySize matches a full player inventory: 36 storage, 4 armor and
// 1 offhand slot.
const InventorySize = 41

var errInventoryFull = errors.New("player inventory is full")

type Player struct {
	id   domain.PlayerID
	name string

	mu        sync.Mutex
	inventory []domain.Item
	cursor    domain.Item
	view      *domain.VirtualContainer
	messages  []string
	onOpen    func(*domain.VirtualContainer) error
}

var _ ports.Player = (*Player)(nil)

func NewPlayer(id domain.PlayerID, name string) *Player {
	return &Player{
		id:        id,
		name:      name,
		inventory: make([]domain.Item, InventorySize),
	}
}

// OfflinePlayerID derives a stable id from a player name.
func OfflinePlayerID(name string) domain.PlayerID {
	return domain.PlayerID(uuid.NewSHA1(uuid.NameSpaceOID, []byte("OfflinePlayer:"+name)))
}

func (p *Player) ID() domain.PlayerID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) InventoryContents() []domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	contents := make([]domain.Item, len(p.inventory))
	copy(contents, p.inventory)
	return contents
}

func (p *Player) SendMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, text)
}

func (p *Player) OpenContainer(container *domain.VirtualContainer) error {
	p.mu.Lock()
	hook := p.onOpen
	p.mu.Unlock()

	if hook != nil {
		if err := hook(container); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = container
	return nil
}

// SetOpenHook installs a check run before a container is shown. A non-nil
// error refuses the container.
func (p *Player) SetOpenHook(hook func(*domain.VirtualContainer) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onOpen = hook
}

func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}

func (p *Player) View() *domain.VirtualContainer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

func (p *Player) Cursor() domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

func (p *Player) Slot(slot int) domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	if slot < 0 || slot >= len(p.inventory) {
		return nil
	}
	return p.inventory[slot]
}

func (p *Player) SetSlot(slot int, item domain.Item) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if slot < 0 || slot >= len(p.inventory) {
		return domain.ErrSlotOutOfRange
	}
	p.inventory[slot] = item
	return nil
}

// ItemCount counts the occupied inventory slots.
func (p *Player) ItemCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	for _, item := range p.inventory {
		if item != nil {
			count++
		}
	}
	return count
}

// clearInventory empties the inventory and returns what it held.
func (p *Player) clearInventory() []domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	dropped := make([]domain.Item, 0, len(p.inventory))
	for i, item := range p.inventory {
		if item != nil {
			dropped = append(dropped, item)
		}
		p.inventory[i] = nil
	}
	return dropped
}

func (p *Player) addItem(item domain.Item) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, current := range p.inventory {
		if current == nil {
			p.inventory[i] = item
			return i, nil
		}
	}
	return -1, errInventoryFull
}

func (p *Player) setCursor(item domain.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = item
}

func (p *Player) closeView() *domain.VirtualContainer {
	p.mu.Lock()
	defer p.mu.Unlock()

	view := p.view
	p.view = nil
	return view
}
