package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedInventoryRemove(t *testing.T) {
	inv := NewSavedInventory(NewPlayerID(), time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	inv.Slots[0] = ItemRecord(`{"type":"sword"}`)
	inv.Slots[3] = ItemRecord(`{"type":"torch","amount":16}`)

	record, ok := inv.Remove(0)
	require.True(t, ok)
	assert.JSONEq(t, `{"type":"sword"}`, string(record))
	assert.Equal(t, 1, inv.Len())

	_, ok = inv.Remove(0)
	assert.False(t, ok)

	_, ok = inv.Remove(3)
	require.True(t, ok)
	assert.True(t, inv.IsEmpty())
}

func TestSavedInventoryValidate(t *testing.T) {
	owner := NewPlayerID()
	tests := []struct {
		name    string
		inv     SavedInventory
		wantErr error
	}{
		{
			name:    "empty slots",
			inv:     NewSavedInventory(owner, time.Time{}),
			wantErr: ErrEmptySavedInventory,
		},
		{
			name:    "negative slot",
			inv:     SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{-1: ItemRecord(`{}`)}},
			wantErr: ErrSlotOutOfRange,
		},
		{
			name:    "record is not json",
			inv:     SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{2: ItemRecord("sword")}},
			wantErr: ErrInvalidItemRecord,
		},
		{
			name: "valid",
			inv:  SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{2: ItemRecord(`{"type":"sword"}`)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Error(t, SavedInventory{Slots: map[SlotIndex]ItemRecord{0: ItemRecord(`{}`)}}.Validate())
}

func TestSavedInventoryMergeKeepsSlotsAndRelocatesCollisions(t *testing.T) {
	owner := NewPlayerID()
	earlier := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	existing := SavedInventory{Owner: owner, CapturedAt: earlier, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"sword"}`),
		1: ItemRecord(`{"type":"shield"}`),
	}}
	incoming := SavedInventory{Owner: owner, CapturedAt: later, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"bow"}`),
		5: ItemRecord(`{"type":"arrow"}`),
	}}

	overflow := existing.Merge(incoming, DefaultCapacity)
	assert.Empty(t, overflow)
	assert.Equal(t, later, existing.CapturedAt)
	assert.Equal(t, []SlotIndex{0, 1, 2, 5}, existing.SortedSlots())
	assert.JSONEq(t, `{"type":"bow"}`, string(existing.Slots[2]))
	assert.JSONEq(t, `{"type":"sword"}`, string(existing.Slots[0]))
}

func TestSavedInventoryMergePlacesFreeSlotsBeforeRelocating(t *testing.T) {
	owner := NewPlayerID()
	existing := SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"sword"}`),
	}}
	incoming := SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"bow"}`),
		1: ItemRecord(`{"type":"arrow"}`),
	}}

	overflow := existing.Merge(incoming, DefaultCapacity)
	assert.Empty(t, overflow)
	assert.JSONEq(t, `{"type":"arrow"}`, string(existing.Slots[1]))
	assert.JSONEq(t, `{"type":"bow"}`, string(existing.Slots[2]))
}

func TestSavedInventoryMergeReportsOverflow(t *testing.T) {
	owner := NewPlayerID()
	existing := SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"sword"}`),
		1: ItemRecord(`{"type":"shield"}`),
	}}
	incoming := SavedInventory{Owner: owner, Slots: map[SlotIndex]ItemRecord{
		0: ItemRecord(`{"type":"bow"}`),
		1: ItemRecord(`{"type":"arrow"}`),
	}}

	overflow := existing.Merge(incoming, 3)
	assert.Equal(t, []SlotIndex{1}, overflow)
	assert.Equal(t, 3, existing.Len())
}

func TestSavedInventoryCloneIsIndependent(t *testing.T) {
	inv := SavedInventory{Owner: NewPlayerID(), Slots: map[SlotIndex]ItemRecord{0: ItemRecord(`{"a":1}`)}}

	clone := inv.Clone()
	clone.Remove(0)

	assert.Equal(t, 1, inv.Len())
	assert.True(t, clone.IsEmpty())
}

func TestParsePlayerID(t *testing.T) {
	id := NewPlayerID()

	parsed, err := ParsePlayerID("  " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParsePlayerID("steve")
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse player id")
}
