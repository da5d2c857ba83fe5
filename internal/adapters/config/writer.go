package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

// ClaimPointWriter rewrites the [chest] table of the config file and keeps
// every other key as it was.
type ClaimPointWriter struct {
	path string
	mu   sync.Mutex
}

var _ ports.ClaimPointWriter = (*ClaimPointWriter)(nil)

func NewClaimPointWriter(path string) *ClaimPointWriter {
	return &ClaimPointWriter{path: filepath.Clean(path)}
}

func (w *ClaimPointWriter) SaveClaimPoint(ctx context.Context, point domain.ClaimPoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := point.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	doc, err := w.read()
	if err != nil {
		return err
	}

	doc["chest"] = map[string]any{
		"world": point.Location.World,
		"x":     point.Location.X,
		"y":     point.Location.Y,
		"z":     point.Location.Z,
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	return w.write(data)
}

func (w *ClaimPointWriter) read() (map[string]any, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return doc, nil
}

func (w *ClaimPointWriter) write(data []byte) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
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
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, w.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
