package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
)

var ErrInvalidItem = errors.New("invalid item")

// Item is the stack type of the simulated host.
type Item struct {
	Type   string            `json:"type"`
	Amount int               `json:"amount"`
	Meta   map[string]string `json:"meta,omitempty"`
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidItem)
	}
	if i.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidItem)
	}
	return nil
}

func (i Item) String() string {
	return fmt.Sprintf("%dx %s", i.Amount, i.Type)
}

// Codec stores Items as their JSON form.
type Codec struct{}

var _ ports.ItemCodec = Codec{}

func (Codec) Serialize(item domain.Item) (domain.ItemRecord, error) {
	stack, ok := asItem(item)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported item type %T", ErrInvalidItem, item)
	}
	if err := stack.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(stack)
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}

	return data, nil
}

func (Codec) Deserialize(record domain.ItemRecord) (domain.Item, error) {
	var stack Item
	if err := json.Unmarshal(record, &stack); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	if err := stack.Validate(); err != nil {
		return nil, err
	}

	return stack, nil
}

func asItem(item domain.Item) (Item, bool) {
	switch typed := item.(type) {
	case Item:
		return typed, true
	case *Item:
		if typed == nil {
			return Item{}, false
		}
		return *typed, true
	default:
		return Item{}, false
	}
}
