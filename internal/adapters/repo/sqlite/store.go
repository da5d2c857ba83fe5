// Package sqlite keeps saved inventories as whole JSON documents in a SQLite
// table, one row per player.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/deathchest/internal/adapters/repo/document"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	sqlDB *sql.DB
	clock ports.Clock
}

var _ ports.SavedInventoryRepository = (*Store)(nil)

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

// Open opens the database at path and ensures the schema exists.
func Open(path string, clock ports.Clock) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	if err := os.MkdirAll(filepath.Dir(filepath.Clean(path)), 0o700); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, clock: clock}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(ctx context.Context, id domain.PlayerID) (domain.SavedInventory, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedInventory{}, err
	}

	var data []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT document FROM saved_inventories WHERE player_id = ?`,
		id.String(),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SavedInventory{}, domain.ErrSavedInventoryNotFound
		}
		return domain.SavedInventory{}, fmt.Errorf("query saved inventory %s: %w", id, err)
	}

	inv, err := document.Decode(data, id)
	if err != nil {
		return domain.SavedInventory{}, fmt.Errorf("decode saved inventory %s: %w", id, err)
	}

	return inv, nil
}

func (s *Store) Save(ctx context.Context, inv domain.SavedInventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := document.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode saved inventory %s: %w", inv.Owner, err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saved_inventories (player_id, document, slot_count, captured_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   document = excluded.document,
		   slot_count = excluded.slot_count,
		   captured_at = excluded.captured_at,
		   updated_at = excluded.updated_at`,
		inv.Owner.String(),
		data,
		inv.Len(),
		toMillis(inv.CapturedAt),
		toMillis(s.clock.Now()),
	)
	if err != nil {
		return fmt.Errorf("upsert saved inventory %s: %w", inv.Owner, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id domain.PlayerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saved_inventories WHERE player_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete saved inventory %s: %w", id, err)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.SavedInventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT player_id, document FROM saved_inventories ORDER BY player_id`)
	if err != nil {
		return nil, fmt.Errorf("list saved inventories: %w", err)
	}
	defer rows.Close()

	var (
		inventories []domain.SavedInventory
		errs        []error
	)
	for rows.Next() {
		var (
			playerID string
			data     []byte
		)
		if err := rows.Scan(&playerID, &data); err != nil {
			return nil, fmt.Errorf("scan saved inventory: %w", err)
		}

		id, err := domain.ParsePlayerID(playerID)
		if err != nil {
			errs = append(errs, fmt.Errorf("decode saved inventory %s: %w: %w", playerID, domain.ErrCorruptSavedInventory, err))
			continue
		}
		inv, err := document.Decode(data, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("decode saved inventory %s: %w", playerID, err))
			continue
		}
		inventories = append(inventories, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved inventories: %w", err)
	}

	return inventories, errors.Join(errs...)
}
