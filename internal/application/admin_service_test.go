package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/bnema/deathchest/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminListClaimsNewestFirst(t *testing.T) {
	t.Parallel()

	older := savedFor(domain.NewPlayerID(), map[domain.SlotIndex]string{0: "sword"})
	newer := savedFor(domain.NewPlayerID(), map[domain.SlotIndex]string{0: "bow", 1: "arrow"})
	newer.CapturedAt = older.CapturedAt.Add(2 * time.Hour)

	svc := NewAdminService(newInMemoryRepo(older, newer), nil, nil, nil)

	claims, err := svc.ListClaims(context.Background())
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, newer.Owner, claims[0].Owner)
	assert.Equal(t, 2, claims[0].Slots)
	assert.Equal(t, older.Owner, claims[1].Owner)
}

func TestAdminListClaimsSkipsCorruptRecords(t *testing.T) {
	t.Parallel()

	good := savedFor(domain.NewPlayerID(), map[domain.SlotIndex]string{0: "sword"})
	repo := mocks.NewMockSavedInventoryRepository(t)
	repo.EXPECT().List(mock.Anything).Return(
		[]domain.SavedInventory{good},
		fmt.Errorf("decode saved inventory x: %w", domain.ErrCorruptSavedInventory),
	)

	claims, err := NewAdminService(repo, nil, nil, nil).ListClaims(context.Background())
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, good.Owner, claims[0].Owner)
}

func TestAdminListClaimsFailsOnStorageError(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSavedInventoryRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("disk unavailable"))

	_, err := NewAdminService(repo, nil, nil, nil).ListClaims(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "list saved inventories")
}

func TestAdminPurgeClaim(t *testing.T) {
	t.Parallel()

	inv := savedFor(domain.NewPlayerID(), map[domain.SlotIndex]string{0: "sword"})
	repo := newInMemoryRepo(inv)
	svc := NewAdminService(repo, nil, nil, nil)

	require.NoError(t, svc.PurgeClaim(context.Background(), inv.Owner))
	_, err := svc.GetClaim(context.Background(), inv.Owner)
	assert.ErrorIs(t, err, domain.ErrSavedInventoryNotFound)

	err = svc.PurgeClaim(context.Background(), inv.Owner)
	assert.ErrorIs(t, err, domain.ErrSavedInventoryNotFound)
}

func TestAdminPurgeCorruptClaimStillDeletes(t *testing.T) {
	t.Parallel()

	id := domain.NewPlayerID()
	repo := mocks.NewMockSavedInventoryRepository(t)
	repo.EXPECT().Get(mock.Anything, id).Return(domain.SavedInventory{}, errors.New("decode saved inventory: unexpected end of JSON input"))
	repo.EXPECT().Delete(mock.Anything, id).Return(nil)

	require.NoError(t, NewAdminService(repo, nil, nil, nil).PurgeClaim(context.Background(), id))
}

func TestAdminClaimPoint(t *testing.T) {
	t.Parallel()

	point := domain.ClaimPoint{Location: domain.BlockLocation{World: "world", X: 4, Y: 70, Z: 9}}
	writer := mocks.NewMockClaimPointWriter(t)
	writer.EXPECT().SaveClaimPoint(mock.Anything, point).Return(nil)

	svc := NewAdminService(newInMemoryRepo(), ports.StaticClaimPoint{}, writer, nil)

	_, err := svc.ClaimPoint()
	assert.ErrorIs(t, err, domain.ErrClaimPointNotConfigured)

	require.NoError(t, svc.SetClaimPoint(context.Background(), point))
	assert.Error(t, svc.SetClaimPoint(context.Background(), domain.ClaimPoint{}))

	got, err := NewAdminService(nil, ports.StaticClaimPoint{Point: point, Set: true}, nil, nil).ClaimPoint()
	require.NoError(t, err)
	assert.Equal(t, point, got)
}
