package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/deathchest/internal/domain"
)

type testItem struct {
	Type   string `json:"type"`
	Amount int    `json:"amount,omitempty"`
}

type jsonCodec struct {
	failType string
}

func (c jsonCodec) Serialize(item domain.Item) (domain.ItemRecord, error) {
	typed, ok := item.(testItem)
	if !ok {
		return nil, fmt.Errorf("unsupported item %T", item)
	}
	if c.failType != "" && typed.Type == c.failType {
		return nil, errors.New("cannot serialize " + typed.Type)
	}
	return json.Marshal(typed)
}

func (c jsonCodec) Deserialize(record domain.ItemRecord) (domain.Item, error) {
	var item testItem
	if err := json.Unmarshal(record, &item); err != nil {
		return nil, err
	}
	if c.failType != "" && item.Type == c.failType {
		return nil, errors.New("unknown material " + item.Type)
	}
	return item, nil
}

func record(t string) domain.ItemRecord {
	data, _ := json.Marshal(testItem{Type: t})
	return data
}

type inMemoryRepo struct {
	mu          sync.Mutex
	inventories map[domain.PlayerID]domain.SavedInventory
	saves       int
	deletes     int
}

func newInMemoryRepo(inventories ...domain.SavedInventory) *inMemoryRepo {
	repo := &inMemoryRepo{inventories: map[domain.PlayerID]domain.SavedInventory{}}
	for _, inv := range inventories {
		repo.inventories[inv.Owner] = inv.Clone()
	}
	return repo
}

func (r *inMemoryRepo) Get(_ context.Context, id domain.PlayerID) (domain.SavedInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.inventories[id]
	if !ok {
		return domain.SavedInventory{}, domain.ErrSavedInventoryNotFound
	}
	return inv.Clone(), nil
}

func (r *inMemoryRepo) Save(_ context.Context, inv domain.SavedInventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := inv.Validate(); err != nil {
		return err
	}
	r.saves++
	r.inventories[inv.Owner] = inv.Clone()
	return nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id domain.PlayerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deletes++
	delete(r.inventories, id)
	return nil
}

func (r *inMemoryRepo) List(_ context.Context) ([]domain.SavedInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.SavedInventory, 0, len(r.inventories))
	for _, inv := range r.inventories {
		out = append(out, inv.Clone())
	}
	return out, nil
}

type fakePlayer struct {
	mu       sync.Mutex
	id       domain.PlayerID
	name     string
	contents []domain.Item
	messages []string
	opened   []*domain.VirtualContainer
	openErr  error
}

func newFakePlayer(name string, contents map[int]domain.Item) *fakePlayer {
	slots := make([]domain.Item, 41)
	for index, item := range contents {
		slots[index] = item
	}
	return &fakePlayer{id: domain.NewPlayerID(), name: name, contents: slots}
}

func (p *fakePlayer) ID() domain.PlayerID {
	return p.id
}

func (p *fakePlayer) Name() string {
	return p.name
}

func (p *fakePlayer) InventoryContents() []domain.Item {
	return p.contents
}

func (p *fakePlayer) SendMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, text)
}

func (p *fakePlayer) OpenContainer(container *domain.VirtualContainer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.openErr != nil {
		return p.openErr
	}
	p.opened = append(p.opened, container)
	return nil
}

func (p *fakePlayer) lastMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func savedFor(owner domain.PlayerID, slots map[domain.SlotIndex]string) domain.SavedInventory {
	inv := domain.NewSavedInventory(owner, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC))
	for slot, itemType := range slots {
		inv.Slots[slot] = record(itemType)
	}
	return inv
}
