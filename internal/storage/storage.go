// Package storage abstracts blob storage for exploration result payloads.
// Result payloads (strategy lists plus the model's thinking narrative) can
// grow large, so they live in blob storage while the exploration row keeps
// only a reference.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Client stores and retrieves exploration result payloads.
type Client interface {
	PutResult(ctx context.Context, explorationID string, data []byte) error
	GetResult(ctx context.Context, explorationID string) ([]byte, error)
}

// LocalStorage implements Client using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(explorationID string) string {
	return filepath.Join(s.BaseDir, "results", explorationID+".json")
}

// PutResult stores a result payload blob.
func (s *LocalStorage) PutResult(ctx context.Context, explorationID string, data []byte) error {
	p := s.path(explorationID)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(p, data, 0o644)
}

// GetResult retrieves a result payload blob.
func (s *LocalStorage) GetResult(ctx context.Context, explorationID string) ([]byte, error) {
	return os.ReadFile(s.path(explorationID))
}
