package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/sirupsen/logrus"
)

// CaptureService snapshots a dying player's inventory into a SavedInventory.
type CaptureService struct {
	repo     ports.SavedInventoryRepository
	codec    ports.ItemCodec
	clock    ports.Clock
	logger   logrus.FieldLogger
	capacity int
}

func NewCaptureService(repo ports.SavedInventoryRepository, codec ports.ItemCodec, clock ports.Clock, logger logrus.FieldLogger, capacity int) *CaptureService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	if capacity <= 0 {
		capacity = domain.DefaultCapacity
	}

	return &CaptureService{
		repo:     repo,
		codec:    codec,
		clock:    clock,
		logger:   logger,
		capacity: capacity,
	}
}

// Capture persists the player's non-empty slots. It reports false without
// writing anything when the inventory is empty. Loot from an earlier,
// unclaimed death is kept and the new items are merged around it.
func (s *CaptureService) Capture(ctx context.Context, player ports.Player) (domain.SavedInventory, bool, error) {
	captured := domain.NewSavedInventory(player.ID(), s.clock.Now())
	for index, item := range player.InventoryContents() {
		if item == nil {
			continue
		}

		record, err := s.codec.Serialize(item)
		if err != nil {
			return domain.SavedInventory{}, false, fmt.Errorf("serialize slot %d: %w", index, err)
		}
		captured.Slots[domain.SlotIndex(index)] = record
	}

	if captured.IsEmpty() {
		return domain.SavedInventory{}, false, nil
	}

	stored, err := s.repo.Get(ctx, player.ID())
	if err != nil {
		if !errors.Is(err, domain.ErrSavedInventoryNotFound) {
			return domain.SavedInventory{}, false, fmt.Errorf("load previous saved inventory: %w", err)
		}
		stored = domain.NewSavedInventory(player.ID(), captured.CapturedAt)
	}

	if overflow := stored.Merge(captured, s.capacity); len(overflow) > 0 {
		return domain.SavedInventory{}, false, fmt.Errorf("merge %d slots into saved inventory: %w", len(overflow), domain.ErrSavedInventoryFull)
	}

	if err := s.repo.Save(ctx, stored); err != nil {
		return domain.SavedInventory{}, false, fmt.Errorf("save saved inventory: %w", err)
	}

	return stored, true, nil
}

// HandleDeath runs Capture for a death event. Drops are suppressed only after
// the record is on storage; any failure leaves the natural drops in place.
func (s *CaptureService) HandleDeath(ctx context.Context, event DeathEvent) DeathOutcome {
	logger := s.logger.WithFields(playerFields(event.Player))

	saved, ok, err := s.Capture(ctx, event.Player)
	if err != nil {
		logger.WithError(err).Error("capture death inventory failed, items will drop")
		event.Player.SendMessage(MsgCaptureFailed)
		return DeathOutcome{}
	}
	if !ok {
		logger.Debug("death with empty inventory, nothing captured")
		return DeathOutcome{}
	}

	logger.WithField("slots", saved.Len()).Info("death inventory saved")
	event.Player.SendMessage(MsgInventorySaved)

	return DeathOutcome{SuppressDrops: true, SavedSlots: saved.Len()}
}
