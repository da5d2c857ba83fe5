package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/sirupsen/logrus"
)

type ClaimSummary struct {
	Owner      domain.PlayerID
	Slots      int
	CapturedAt time.Time
}

// AdminService backs the operator commands: inspecting and purging stored
// claims and moving the claim point.
type AdminService struct {
	repo   ports.SavedInventoryRepository
	source ports.ClaimPointSource
	writer ports.ClaimPointWriter
	logger logrus.FieldLogger
}

func NewAdminService(repo ports.SavedInventoryRepository, source ports.ClaimPointSource, writer ports.ClaimPointWriter, logger logrus.FieldLogger) *AdminService {
	if logger == nil {
		logger = discardLogger()
	}

	return &AdminService{repo: repo, source: source, writer: writer, logger: logger}
}

func (s *AdminService) ListClaims(ctx context.Context) ([]ClaimSummary, error) {
	inventories, err := s.repo.List(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptSavedInventory) {
			return nil, fmt.Errorf("list saved inventories: %w", err)
		}
		// Unreadable records stay on storage for purge; the rest are listed.
		s.logger.WithError(err).Warn("corrupt saved inventories skipped")
	}

	summaries := make([]ClaimSummary, 0, len(inventories))
	for _, inv := range inventories {
		summaries = append(summaries, ClaimSummary{
			Owner:      inv.Owner,
			Slots:      inv.Len(),
			CapturedAt: inv.CapturedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CapturedAt.Equal(summaries[j].CapturedAt) {
			return summaries[i].CapturedAt.After(summaries[j].CapturedAt)
		}
		return summaries[i].Owner.String() < summaries[j].Owner.String()
	})

	return summaries, nil
}

func (s *AdminService) GetClaim(ctx context.Context, id domain.PlayerID) (domain.SavedInventory, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.SavedInventory{}, fmt.Errorf("get saved inventory %s: %w", id, err)
	}

	return inv, nil
}

func (s *AdminService) PurgeClaim(ctx context.Context, id domain.PlayerID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSavedInventoryNotFound) {
			return fmt.Errorf("purge saved inventory %s: %w", id, err)
		}
		// A corrupt record can still be purged.
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("purge saved inventory %s: %w", id, err)
	}

	return nil
}

func (s *AdminService) ClaimPoint() (domain.ClaimPoint, error) {
	if s.source == nil {
		return domain.ClaimPoint{}, domain.ErrClaimPointNotConfigured
	}
	point, ok := s.source.ClaimPoint()
	if !ok {
		return domain.ClaimPoint{}, domain.ErrClaimPointNotConfigured
	}

	return point, nil
}

func (s *AdminService) SetClaimPoint(ctx context.Context, point domain.ClaimPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if s.writer == nil {
		return errors.New("claim point writer is not configured")
	}
	if err := s.writer.SaveClaimPoint(ctx, point); err != nil {
		return fmt.Errorf("save claim point: %w", err)
	}

	return nil
}
