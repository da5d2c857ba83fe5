package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInventory(owner domain.PlayerID) domain.SavedInventory {
	inv := domain.NewSavedInventory(owner, time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC))
	inv.Slots[0] = domain.ItemRecord(`{"type":"diamond_sword","amount":1,"meta":{"enchants":{"sharpness":5}}}`)
	inv.Slots[3] = domain.ItemRecord(`{"type":"torch","amount":16}`)
	inv.Slots[40] = domain.ItemRecord(`{"type":"shield","amount":1}`)
	return inv
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	want := sampleInventory(domain.NewPlayerID())
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Get(context.Background(), want.Owner)
	require.NoError(t, err)
	assert.Equal(t, want.Owner, got.Owner)
	assert.Equal(t, want.CapturedAt, got.CapturedAt)
	require.Equal(t, want.SortedSlots(), got.SortedSlots())
	for slot, record := range want.Slots {
		assert.JSONEq(t, string(record), string(got.Slots[slot]), "slot %d", slot)
	}
}

func TestRepositoryWritesOneDocumentPerPlayer(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	inv := sampleInventory(domain.NewPlayerID())
	require.NoError(t, repo.Save(context.Background(), inv))

	path := filepath.Join(root, inv.Owner.String()+".json")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(recordFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)
	assert.Contains(t, string(data), `"3": {`)

	matches, err := filepath.Glob(filepath.Join(root, ".inventory-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRepositoryGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "death_data"))
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), domain.NewPlayerID())
	assert.ErrorIs(t, err, domain.ErrSavedInventoryNotFound)

	inventories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, inventories)
}

func TestRepositoryRejectsEmptyInventory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	empty := domain.NewSavedInventory(domain.NewPlayerID(), time.Now())
	err = repo.Save(context.Background(), empty)
	require.ErrorIs(t, err, domain.ErrEmptySavedInventory)

	_, statErr := os.Stat(filepath.Join(root, empty.Owner.String()+".json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepositoryDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	inv := sampleInventory(domain.NewPlayerID())
	require.NoError(t, repo.Save(context.Background(), inv))

	require.NoError(t, repo.Delete(context.Background(), inv.Owner))
	require.NoError(t, repo.Delete(context.Background(), inv.Owner))

	_, err = repo.Get(context.Background(), inv.Owner)
	assert.ErrorIs(t, err, domain.ErrSavedInventoryNotFound)
}

func TestRepositoryCorruptDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	id := domain.NewPlayerID()
	require.NoError(t, os.WriteFile(filepath.Join(root, id.String()+".json"), []byte(`{"version":1,"items":`), 0o600))

	_, err = repo.Get(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSavedInventoryNotFound)
	assert.ErrorIs(t, err, domain.ErrCorruptSavedInventory)
	assert.ErrorContains(t, err, "decode saved inventory")
}

func TestRepositoryRejectsDocumentOwnedByAnotherPlayer(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	victim := domain.NewPlayerID()
	other := domain.NewPlayerID()
	doc := `{"version":1,"owner":"` + other.String() + `","items":{"0":{"type":"sword","amount":1}}}`
	require.NoError(t, os.WriteFile(filepath.Join(root, victim.String()+".json"), []byte(doc), 0o600))

	_, err = repo.Get(context.Background(), victim)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptSavedInventory)
	assert.NotErrorIs(t, err, domain.ErrSavedInventoryNotFound)

	inventories, err := repo.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptSavedInventory)
	assert.Empty(t, inventories)

	_, statErr := os.Stat(filepath.Join(root, other.String()+".json"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRepositoryListKeepsReadableDocuments(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	good := sampleInventory(domain.NewPlayerID())
	require.NoError(t, repo.Save(context.Background(), good))
	broken := domain.NewPlayerID()
	require.NoError(t, os.WriteFile(filepath.Join(root, broken.String()+".json"), []byte(`{bad`), 0o600))

	inventories, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptSavedInventory)
	assert.ErrorContains(t, err, broken.String())
	require.Len(t, inventories, 1)
	assert.Equal(t, good.Owner, inventories[0].Owner)
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	id := domain.NewPlayerID()
	doc := `{"version":2,"owner":"` + id.String() + `","items":{"0":{"type":"sword"}}}`
	require.NoError(t, os.WriteFile(filepath.Join(root, id.String()+".json"), []byte(doc), 0o600))

	_, err = repo.Get(context.Background(), id)
	assert.ErrorContains(t, err, "unsupported saved inventory schema version 2")
}

func TestRepositoryListSkipsForeignFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo, err := NewRepository(root)
	require.NoError(t, err)

	first := sampleInventory(domain.NewPlayerID())
	second := sampleInventory(domain.NewPlayerID())
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yml"), []byte("chest: {}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.json"), []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "archive"), 0o700))

	inventories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, inventories, 2)
	owners := []domain.PlayerID{inventories[0].Owner, inventories[1].Owner}
	assert.ElementsMatch(t, []domain.PlayerID{first.Owner, second.Owner}, owners)
}

func TestRepositoryConcurrentSavesAcrossPlayers(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	const players = 16
	ids := make([]domain.PlayerID, players)
	var wg sync.WaitGroup
	for i := range ids {
		ids[i] = domain.NewPlayerID()
		wg.Add(1)
		go func(id domain.PlayerID) {
			defer wg.Done()
			assert.NoError(t, repo.Save(context.Background(), sampleInventory(id)))
		}(ids[i])
	}
	wg.Wait()

	inventories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, inventories, players)
}

func TestRepositoryHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, sampleInventory(domain.NewPlayerID())), context.Canceled)
	_, err = repo.Get(ctx, domain.NewPlayerID())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRepositoryRejectsEmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewRepository("  ")
	assert.ErrorContains(t, err, "saved inventory directory is empty")
}
