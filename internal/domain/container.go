package domain

import "github.com/google/uuid"

const (
	DefaultCapacity       = 54
	DefaultContainerTitle = "Death Inventory"
)

type ContainerID uuid.UUID

func NewContainerID() ContainerID {
	return ContainerID(uuid.New())
}

func (id ContainerID) String() string {
	return uuid.UUID(id).String()
}

// VirtualContainer is the temporary browsable view a player sees while a
// claim session is open. It is never persisted.
type VirtualContainer struct {
	ID    ContainerID
	Title string
	slots []Item
}

func NewVirtualContainer(title string, capacity int) *VirtualContainer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if title == "" {
		title = DefaultContainerTitle
	}

	return &VirtualContainer{
		ID:    NewContainerID(),
		Title: title,
		slots: make([]Item, capacity),
	}
}

func (c *VirtualContainer) Capacity() int {
	return len(c.slots)
}

func (c *VirtualContainer) InRange(slot SlotIndex) bool {
	return slot >= 0 && int(slot) < len(c.slots)
}

func (c *VirtualContainer) Item(slot SlotIndex) Item {
	if !c.InRange(slot) {
		return nil
	}
	return c.slots[slot]
}

func (c *VirtualContainer) SetItem(slot SlotIndex, item Item) error {
	if !c.InRange(slot) {
		return ErrSlotOutOfRange
	}
	c.slots[slot] = item
	return nil
}

func (c *VirtualContainer) Clear(slot SlotIndex) {
	if c.InRange(slot) {
		c.slots[slot] = nil
	}
}

func (c *VirtualContainer) Occupied(slot SlotIndex) bool {
	return c.Item(slot) != nil
}

func (c *VirtualContainer) Count() int {
	count := 0
	for _, item := range c.slots {
		if item != nil {
			count++
		}
	}
	return count
}
