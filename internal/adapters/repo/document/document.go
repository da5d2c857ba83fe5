// Package document is the stored JSON form of a saved inventory, shared by
// every repository backend.
package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/deathchest/internal/domain"
)

const currentSchemaVersion = 1

type schema struct {
	Version    int                     `json:"version"`
	Owner      string                  `json:"owner"`
	CapturedAt string                  `json:"captured_at,omitempty"`
	Items      map[int]json.RawMessage `json:"items"`
}

func (d schema) validateVersion() error {
	if d.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported saved inventory schema version %d (current %d)", d.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(inv domain.SavedInventory) schema {
	items := make(map[int]json.RawMessage, len(inv.Slots))
	for slot, record := range inv.Slots {
		items[int(slot)] = json.RawMessage(record)
	}

	return schema{
		Version:    currentSchemaVersion,
		Owner:      inv.Owner.String(),
		CapturedAt: formatTime(inv.CapturedAt),
		Items:      items,
	}
}

func fromSchema(doc schema) (domain.SavedInventory, error) {
	owner, err := domain.ParsePlayerID(doc.Owner)
	if err != nil {
		return domain.SavedInventory{}, err
	}

	inv := domain.NewSavedInventory(owner, parseTime(doc.CapturedAt))
	for slot, raw := range doc.Items {
		inv.Slots[domain.SlotIndex(slot)] = domain.ItemRecord(raw).Clone()
	}

	return inv, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}

// Marshal validates inv and encodes it as the stored JSON document.
func Marshal(inv domain.SavedInventory) ([]byte, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	return json.MarshalIndent(toSchema(inv), "", "  ")
}

// Decode parses a stored document read under the key owner. A document that
// cannot be parsed, or that names a different owner, is reported as
// domain.ErrCorruptSavedInventory.
func Decode(data []byte, owner domain.PlayerID) (domain.SavedInventory, error) {
	var doc schema
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.SavedInventory{}, fmt.Errorf("%w: %w", domain.ErrCorruptSavedInventory, err)
	}
	if err := doc.validateVersion(); err != nil {
		return domain.SavedInventory{}, fmt.Errorf("%w: %w", domain.ErrCorruptSavedInventory, err)
	}

	inv, err := fromSchema(doc)
	if err != nil {
		return domain.SavedInventory{}, fmt.Errorf("%w: %w", domain.ErrCorruptSavedInventory, err)
	}
	if inv.Owner != owner {
		return domain.SavedInventory{}, fmt.Errorf("%w: owner %s stored under key %s", domain.ErrCorruptSavedInventory, inv.Owner, owner)
	}

	return inv, nil
}
