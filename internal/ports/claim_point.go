package ports

import (
	"context"

	"github.com/bnema/deathchest/internal/domain"
)

type ClaimPointSource interface {
	ClaimPoint() (domain.ClaimPoint, bool)
}

type ClaimPointWriter interface {
	SaveClaimPoint(ctx context.Context, point domain.ClaimPoint) error
}

// StaticClaimPoint serves a fixed claim point. The zero value is unset.
type StaticClaimPoint struct {
	Point domain.ClaimPoint
	Set   bool
}

func (s StaticClaimPoint) ClaimPoint() (domain.ClaimPoint, bool) {
	return s.Point, s.Set
}
