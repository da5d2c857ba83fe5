package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type SlotIndex int

// ItemRecord is the serialized form of one item stack as produced by the
// host codec. It must be a JSON document and is never inspected here.
type ItemRecord []byte

func (r ItemRecord) Valid() bool {
	return len(r) > 0 && json.Valid(r)
}

func (r ItemRecord) Clone() ItemRecord {
	if r == nil {
		return nil
	}

	out := make(ItemRecord, len(r))
	copy(out, r)
	return out
}

type SavedInventory struct {
	Owner      PlayerID
	Slots      map[SlotIndex]ItemRecord
	CapturedAt time.Time
}

func NewSavedInventory(owner PlayerID, capturedAt time.Time) SavedInventory {
	return SavedInventory{
		Owner:      owner,
		Slots:      map[SlotIndex]ItemRecord{},
		CapturedAt: capturedAt,
	}
}

func (s SavedInventory) Len() int {
	return len(s.Slots)
}

func (s SavedInventory) IsEmpty() bool {
	return len(s.Slots) == 0
}

func (s SavedInventory) Has(slot SlotIndex) bool {
	_, ok := s.Slots[slot]
	return ok
}

// Remove deletes slot from the mapping and returns the record it held.
func (s *SavedInventory) Remove(slot SlotIndex) (ItemRecord, bool) {
	if s == nil || s.Slots == nil {
		return nil, false
	}

	record, ok := s.Slots[slot]
	if !ok {
		return nil, false
	}
	delete(s.Slots, slot)
	return record, true
}

func (s SavedInventory) SortedSlots() []SlotIndex {
	slots := make([]SlotIndex, 0, len(s.Slots))
	for slot := range s.Slots {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

func (s SavedInventory) Clone() SavedInventory {
	out := SavedInventory{
		Owner:      s.Owner,
		Slots:      make(map[SlotIndex]ItemRecord, len(s.Slots)),
		CapturedAt: s.CapturedAt,
	}
	for slot, record := range s.Slots {
		out.Slots[slot] = record.Clone()
	}
	return out
}

// Validate checks the invariants a record must satisfy before it is written.
func (s SavedInventory) Validate() error {
	if s.Owner.IsZero() {
		return fmt.Errorf("owner is required")
	}
	if s.IsEmpty() {
		return ErrEmptySavedInventory
	}
	for slot, record := range s.Slots {
		if slot < 0 {
			return fmt.Errorf("slot %d: %w", slot, ErrSlotOutOfRange)
		}
		if !record.Valid() {
			return fmt.Errorf("slot %d: %w", slot, ErrInvalidItemRecord)
		}
	}

	return nil
}

// Merge folds incoming into s. Each record keeps its slot when free,
// otherwise it moves to the lowest free slot below capacity. Records that
// cannot be placed are returned.
func (s *SavedInventory) Merge(incoming SavedInventory, capacity int) []SlotIndex {
	if s.Slots == nil {
		s.Slots = map[SlotIndex]ItemRecord{}
	}

	var displaced []SlotIndex
	for _, slot := range incoming.SortedSlots() {
		if !s.Has(slot) && int(slot) < capacity {
			s.Slots[slot] = incoming.Slots[slot]
			continue
		}
		displaced = append(displaced, slot)
	}

	var overflow []SlotIndex
	next := SlotIndex(0)
	for _, slot := range displaced {
		for int(next) < capacity && s.Has(next) {
			next++
		}
		if int(next) >= capacity {
			overflow = append(overflow, slot)
			continue
		}
		s.Slots[next] = incoming.Slots[slot]
	}

	if incoming.CapturedAt.After(s.CapturedAt) {
		s.CapturedAt = incoming.CapturedAt
	}

	return overflow
}
