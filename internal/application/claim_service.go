package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/sirupsen/logrus"
)

var errSlotNotSaved = errors.New("slot not present in saved inventory")

// ClaimSession is the in-memory state of one open claim chest view.
// Container is set before the session is published and never replaced; its
// slots are guarded by mu.
type ClaimSession struct {
	Owner     domain.PlayerID
	Container *domain.VirtualContainer
	OpenedAt  time.Time
	Loaded    int

	mu sync.Mutex
	// backed is false once the stored record has been deleted.
	backed bool
}

func (s *ClaimSession) Backed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backed
}

type ClaimConfig struct {
	Capacity int
	Title    string
}

// ClaimService runs the Idle -> Active -> Idle lifecycle of claim sessions.
// Sessions are keyed by player; a player never has more than one.
type ClaimService struct {
	repo       ports.SavedInventoryRepository
	codec      ports.ItemCodec
	claimPoint ports.ClaimPointSource
	clock      ports.Clock
	logger     logrus.FieldLogger
	cfg        ClaimConfig

	mu       sync.Mutex
	sessions map[domain.PlayerID]*ClaimSession
}

func NewClaimService(repo ports.SavedInventoryRepository, codec ports.ItemCodec, claimPoint ports.ClaimPointSource, clock ports.Clock, logger logrus.FieldLogger, cfg ClaimConfig) *ClaimService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	if claimPoint == nil {
		claimPoint = ports.StaticClaimPoint{}
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = domain.DefaultCapacity
	}
	if cfg.Title == "" {
		cfg.Title = domain.DefaultContainerTitle
	}

	return &ClaimService{
		repo:       repo,
		codec:      codec,
		claimPoint: claimPoint,
		clock:      clock,
		logger:     logger,
		cfg:        cfg,
		sessions:   map[domain.PlayerID]*ClaimSession{},
	}
}

func (s *ClaimService) HandleInteract(ctx context.Context, event InteractEvent) InteractOutcome {
	if event.Action != InteractRightClickBlock {
		return InteractOutcome{}
	}
	point, ok := s.claimPoint.ClaimPoint()
	if !ok || !point.Matches(event.Location) {
		return InteractOutcome{}
	}

	// The real chest never opens at the claim point.
	outcome := InteractOutcome{Cancel: true}
	logger := s.logger.WithFields(playerFields(event.Player))

	session, err := s.Open(ctx, event.Player)
	switch {
	case err == nil:
		outcome.Session = true
		logger.WithFields(logrus.Fields{
			"container": session.Container.ID.String(),
			"items":     session.Loaded,
		}).Info("claim session opened")
	case errors.Is(err, domain.ErrSessionActive):
		logger.Debug("claim interaction ignored, session already active")
	case errors.Is(err, domain.ErrSavedInventoryNotFound):
		event.Player.SendMessage(MsgNoSavedInventory)
	default:
		logger.WithError(err).Error("open claim session failed")
		event.Player.SendMessage(MsgLoadFailed)
	}

	return outcome
}

// Open loads the player's saved inventory into a fresh virtual container and
// shows it to the player. Slots that cannot be decoded are skipped.
func (s *ClaimService) Open(ctx context.Context, player ports.Player) (*ClaimSession, error) {
	id := player.ID()
	logger := s.logger.WithFields(playerFields(player))

	session := &ClaimSession{
		Owner:     id,
		Container: domain.NewVirtualContainer(s.cfg.Title, s.cfg.Capacity),
		OpenedAt:  s.clock.Now(),
		backed:    true,
	}
	if !s.reserve(session) {
		return nil, domain.ErrSessionActive
	}

	saved, err := s.repo.Get(ctx, id)
	if err != nil {
		s.release(session)
		return nil, fmt.Errorf("load saved inventory: %w", err)
	}
	logger.WithField("slots", saved.Len()).Debug("loaded saved inventory")

	container := session.Container
	session.mu.Lock()
	for _, slot := range saved.SortedSlots() {
		slotLogger := logger.WithField("slot", int(slot))
		if !container.InRange(slot) {
			slotLogger.Warn("saved slot outside claim container, skipped")
			continue
		}

		item, err := s.codec.Deserialize(saved.Slots[slot])
		if err != nil {
			slotLogger.WithError(err).Warn("deserialize saved item failed, skipped")
			continue
		}
		if err := container.SetItem(slot, item); err != nil {
			slotLogger.WithError(err).Warn("place saved item failed, skipped")
			continue
		}
		session.Loaded++
	}
	session.mu.Unlock()

	player.SendMessage(fmt.Sprintf(MsgLoadedItemsFormat, session.Loaded))
	if err := player.OpenContainer(container); err != nil {
		s.release(session)
		return nil, fmt.Errorf("open claim container: %w", err)
	}

	return session, nil
}

func (s *ClaimService) HandleClick(ctx context.Context, event ClickEvent) ClickOutcome {
	session, ok := s.Session(event.Player.ID())
	if !ok || session.Container.ID != event.View {
		return ClickOutcome{}
	}

	// Held until the record and the view agree again.
	session.mu.Lock()
	defer session.mu.Unlock()

	container := session.Container
	kind := domain.ClassifyClick(event.Target, event.Action, container.InRange(event.Slot), container.Occupied(event.Slot))

	switch kind {
	case domain.ClickRejectDeposit:
		event.Player.SendMessage(MsgTakeOnly)
		return ClickOutcome{Cancel: true}
	case domain.ClickRejectBulkDeposit:
		event.Player.SendMessage(MsgNoShiftDeposit)
		return ClickOutcome{Cancel: true}
	case domain.ClickWithdraw:
		return s.withdraw(ctx, event, session)
	case domain.ClickBulkWithdraw:
		return s.bulkWithdraw(ctx, event, session)
	default:
		return ClickOutcome{}
	}
}

// withdraw persists the removal before the item reaches the cursor; on a
// failed write the visible slot and cursor are left as they were.
func (s *ClaimService) withdraw(ctx context.Context, event ClickEvent, session *ClaimSession) ClickOutcome {
	err := s.removeSlot(ctx, event.Player, session, event.Slot)
	if err != nil {
		return s.withdrawFailed(event, session, err)
	}

	item := session.Container.Item(event.Slot)
	session.Container.Clear(event.Slot)
	return ClickOutcome{Cancel: true, Cursor: item, SetCursor: true}
}

// bulkWithdraw lets the host move the item itself and only keeps the stored
// record in step with the slot removal.
func (s *ClaimService) bulkWithdraw(ctx context.Context, event ClickEvent, session *ClaimSession) ClickOutcome {
	if err := s.removeSlot(ctx, event.Player, session, event.Slot); err != nil {
		return s.withdrawFailed(event, session, err)
	}

	return ClickOutcome{}
}

func (s *ClaimService) withdrawFailed(event ClickEvent, session *ClaimSession, err error) ClickOutcome {
	logger := s.logger.WithFields(playerFields(event.Player)).WithFields(logrus.Fields{
		"slot":      int(event.Slot),
		"container": session.Container.ID.String(),
	})

	if errors.Is(err, errSlotNotSaved) || errors.Is(err, domain.ErrSavedInventoryNotFound) {
		// The view showed an item the record no longer holds.
		logger.WithError(err).Warn("stale claim slot cleared")
		session.Container.Clear(event.Slot)
		return ClickOutcome{Cancel: true}
	}

	logger.WithError(err).Error("persist claim withdrawal failed")
	event.Player.SendMessage(MsgSaveChangesFailed)
	return ClickOutcome{Cancel: true}
}

// removeSlot re-reads the whole record, drops slot and writes it back, or
// deletes the record when it becomes empty. The caller holds session.mu.
func (s *ClaimService) removeSlot(ctx context.Context, player ports.Player, session *ClaimSession, slot domain.SlotIndex) error {
	if !session.backed {
		return domain.ErrSavedInventoryNotFound
	}

	saved, err := s.repo.Get(ctx, session.Owner)
	if err != nil {
		if errors.Is(err, domain.ErrSavedInventoryNotFound) {
			session.backed = false
		}
		return fmt.Errorf("reload saved inventory: %w", err)
	}

	if _, ok := saved.Remove(slot); !ok {
		return fmt.Errorf("slot %d: %w", slot, errSlotNotSaved)
	}

	if saved.IsEmpty() {
		if err := s.repo.Delete(ctx, session.Owner); err != nil {
			return fmt.Errorf("delete claimed saved inventory: %w", err)
		}
		session.backed = false
		s.logger.WithFields(playerFields(player)).Info("all saved items claimed, record deleted")
		player.SendMessage(MsgAllItemsClaimed)
		return nil
	}

	if err := s.repo.Save(ctx, saved); err != nil {
		return fmt.Errorf("save saved inventory: %w", err)
	}

	return nil
}

// HandleClose detaches the session whose container was closed. The record
// already reflects every withdrawal so nothing is written.
func (s *ClaimService) HandleClose(_ context.Context, event CloseEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[event.Player.ID()]
	if !ok || session.Container.ID != event.Container {
		return false
	}
	delete(s.sessions, event.Player.ID())

	s.logger.WithFields(playerFields(event.Player)).WithField("container", event.Container.String()).Debug("claim session closed")
	return true
}

// HandleQuit drops any session left behind by a disconnecting player.
func (s *ClaimService) HandleQuit(_ context.Context, id domain.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *ClaimService) Shutdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.sessions)
	s.sessions = map[domain.PlayerID]*ClaimSession{}
	return count
}

func (s *ClaimService) Session(id domain.PlayerID) (*ClaimSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	return session, ok
}

func (s *ClaimService) Active(id domain.PlayerID) bool {
	_, ok := s.Session(id)
	return ok
}

func (s *ClaimService) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *ClaimService) reserve(session *ClaimSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.Owner]; ok {
		return false
	}
	s.sessions[session.Owner] = session
	return true
}

func (s *ClaimService) release(session *ClaimSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.sessions[session.Owner]; ok && current == session {
		delete(s.sessions, session.Owner)
	}
}
