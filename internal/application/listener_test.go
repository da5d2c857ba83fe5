package application

import (
	"context"
	"testing"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerDeathThenClaimRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newInMemoryRepo()
	codec := jsonCodec{}
	listener := NewListener(
		NewCaptureService(repo, codec, fixedClock{now: deathTime}, nil, 0),
		newTestClaimService(repo, codec),
	)

	sword := testItem{Type: "diamond_sword"}
	torches := testItem{Type: "torch", Amount: 32}
	player := newFakePlayer("steve", map[int]domain.Item{0: sword, 3: torches})

	death := listener.OnPlayerDeath(ctx, DeathEvent{Player: player})
	require.True(t, death.SuppressDrops)

	interact := listener.OnPlayerInteract(ctx, rightClickChest(player))
	require.True(t, interact.Session)
	session, ok := listener.Claims().Session(player.ID())
	require.True(t, ok)

	first := listener.OnInventoryClick(ctx, click(player, session, domain.TargetClaim, 0, domain.ClickPickupAll))
	assert.Equal(t, sword, first.Cursor)

	second := listener.OnInventoryClick(ctx, click(player, session, domain.TargetClaim, 3, domain.ClickHotbarSwap))
	assert.False(t, second.Cancel)

	_, err := repo.Get(ctx, player.ID())
	assert.ErrorIs(t, err, domain.ErrSavedInventoryNotFound)

	listener.OnInventoryClose(ctx, CloseEvent{Player: player, Container: session.Container.ID})
	assert.False(t, listener.Claims().Active(player.ID()))

	again := listener.OnPlayerInteract(ctx, rightClickChest(player))
	assert.True(t, again.Cancel)
	assert.False(t, again.Session)
	assert.Equal(t, MsgNoSavedInventory, player.lastMessage())
}

func TestListenerQuitAndShutdown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	player := newFakePlayer("steve", nil)
	repo := newInMemoryRepo(savedFor(player.ID(), map[domain.SlotIndex]string{0: "sword"}))
	listener := NewListener(NewCaptureService(repo, jsonCodec{}, nil, nil, 0), newTestClaimService(repo, jsonCodec{}))

	listener.OnPlayerInteract(ctx, rightClickChest(player))
	require.True(t, listener.Claims().Active(player.ID()))

	listener.OnPlayerQuit(ctx, player.ID())
	assert.False(t, listener.Claims().Active(player.ID()))

	listener.OnPlayerInteract(ctx, rightClickChest(player))
	assert.Equal(t, 1, listener.Shutdown())
}
