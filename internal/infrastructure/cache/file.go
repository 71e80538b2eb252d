package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
)

var _ output.DatasetCache = (*FileCache)(nil)

// FileCache stores the last dataset as a single JSON file.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load returns domain.ErrNoSnapshot when the file does not exist.
func (c *FileCache) Load(_ context.Context) (*entities.CampaignDataset, error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var dataset entities.CampaignDataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return &dataset, nil
}

// Save replaces the file atomically so a concurrent Load never sees a
// partial document.
func (c *FileCache) Save(_ context.Context, dataset *entities.CampaignDataset) error {
	raw, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
