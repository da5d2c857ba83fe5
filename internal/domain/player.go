package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type PlayerID uuid.UUID

var NilPlayerID PlayerID

func ParsePlayerID(raw string) (PlayerID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return NilPlayerID, fmt.Errorf("parse player id %q: %w", raw, err)
	}

	return PlayerID(parsed), nil
}

func NewPlayerID() PlayerID {
	return PlayerID(uuid.New())
}

func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

func (id PlayerID) IsZero() bool {
	return id == NilPlayerID
}

// Item is a host-defined item stack. A nil Item is an empty slot.
type Item any
