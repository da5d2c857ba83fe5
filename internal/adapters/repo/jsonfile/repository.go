// Package jsonfile stores each player's saved inventory as one JSON document
// named after the player id.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/deathchest/internal/adapters/repo/document"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/google/uuid"
)

const (
	recordFileMode  = 0o600
	recordDirMode   = 0o700
	recordExt       = ".json"
	tempFilePattern = ".inventory-*.json.tmp"
)

type Repository struct {
	root string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SavedInventoryRepository = (*Repository)(nil)

func NewRepository(root string) (*Repository, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("saved inventory directory is empty")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve saved inventory directory: %w", err)
	}
	absRoot = filepath.Clean(absRoot)

	return &Repository{root: absRoot, mu: lockForPath(absRoot)}, nil
}

func (r *Repository) Root() string {
	return r.root
}

func (r *Repository) Get(ctx context.Context, id domain.PlayerID) (domain.SavedInventory, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedInventory{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readDocument(r.pathFor(id), id)
}

func (r *Repository) Save(ctx context.Context, inv domain.SavedInventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := document.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode saved inventory %s: %w", inv.Owner, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeDocument(r.pathFor(inv.Owner), data)
}

func (r *Repository) Delete(ctx context.Context, id domain.PlayerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.pathFor(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete saved inventory %s: %w", id, err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.SavedInventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read saved inventory directory: %w", err)
	}

	ids := make([]domain.PlayerID, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != recordExt {
			continue
		}
		parsed, err := uuid.Parse(strings.TrimSuffix(name, recordExt))
		if err != nil {
			continue
		}
		ids = append(ids, domain.PlayerID(parsed))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	inventories := make([]domain.SavedInventory, 0, len(ids))
	var errs []error
	for _, id := range ids {
		inv, err := r.readDocument(r.pathFor(id), id)
		if err != nil {
			if errors.Is(err, domain.ErrSavedInventoryNotFound) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		inventories = append(inventories, inv)
	}

	return inventories, errors.Join(errs...)
}

func (r *Repository) pathFor(id domain.PlayerID) string {
	return filepath.Join(r.root, id.String()+recordExt)
}

func (r *Repository) readDocument(path string, id domain.PlayerID) (domain.SavedInventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SavedInventory{}, domain.ErrSavedInventoryNotFound
		}
		return domain.SavedInventory{}, fmt.Errorf("read saved inventory %s: %w", path, err)
	}

	inv, err := document.Decode(data, id)
	if err != nil {
		return domain.SavedInventory{}, fmt.Errorf("decode saved inventory %s: %w", path, err)
	}

	return inv, nil
}

func (r *Repository) writeDocument(path string, data []byte) error {
	if err := os.MkdirAll(r.root, recordDirMode); err != nil {
		return fmt.Errorf("create saved inventory directory: %w", err)
	}

	tempFile, err := os.CreateTemp(r.root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp saved inventory file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp saved inventory file: %w", err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp saved inventory file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp saved inventory file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp saved inventory file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace saved inventory file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
