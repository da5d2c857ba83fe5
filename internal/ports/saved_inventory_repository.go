package ports

import (
	"context"

	"github.com/bnema/deathchest/internal/domain"
)

// SavedInventoryRepository stores one whole document per player. Save
// replaces the previous document; Delete of a missing record is not an
// error. List returns every readable record even when some are corrupt; the
// error then wraps domain.ErrCorruptSavedInventory.
type SavedInventoryRepository interface {
	Get(ctx context.Context, id domain.PlayerID) (domain.SavedInventory, error)
	Save(ctx context.Context, inventory domain.SavedInventory) error
	Delete(ctx context.Context, id domain.PlayerID) error
	List(ctx context.Context) ([]domain.SavedInventory, error)
}
