package domain

import (
	"fmt"
	"strings"
)

type BlockLocation struct {
	World string
	X     int
	Y     int
	Z     int
}

func (l BlockLocation) String() string {
	return fmt.Sprintf("%s(%d, %d, %d)", l.World, l.X, l.Y, l.Z)
}

// ClaimPoint is the configured block where the claim interaction is
// recognized.
type ClaimPoint struct {
	Location BlockLocation
}

func (p ClaimPoint) Validate() error {
	if strings.TrimSpace(p.Location.World) == "" {
		return fmt.Errorf("claim point world is required")
	}

	return nil
}

func (p ClaimPoint) Matches(loc BlockLocation) bool {
	return p.Location == loc
}
