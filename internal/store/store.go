package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/logging"
)

// Collection keys. Each holds the whole collection as one JSON array.
const (
	KeySongs     = "songs"
	KeySchedules = "schedules"
)

// ErrNotFound is returned by UpdateData when the key was never created
var ErrNotFound = errors.New("data not found")

// Backend is a string-keyed store holding JSON-encoded values.
// Get reports ok=false for a missing key without an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Store encodes values as JSON on top of a Backend. Failures are logged and
// returned unchanged to the caller; nothing is retried.
type Store struct {
	backend Backend
	logger  *zap.Logger
}

// New creates a store over backend
func New(backend Backend, logger *zap.Logger) *Store {
	return &Store{backend: backend, logger: logging.OrNop(logger)}
}

// Backend returns the underlying backend
func (s *Store) Backend() Backend {
	return s.backend
}

// CreateData encodes value and writes it under key, replacing any previous value
func (s *Store) CreateData(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Error saving data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.backend.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Error("Error saving data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("save %s: %w", key, err)
	}

	s.logger.Debug("Saved data", zap.String("key", key), zap.Int("bytes", len(encoded)))
	return nil
}

// ReadData decodes the value stored under key into dst.
// found is false when the key is absent; dst is left untouched in that case.
func (s *Store) ReadData(ctx context.Context, key string, dst any) (found bool, err error) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error("Error reading data", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Error("Error reading data", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// UpdateData overwrites an existing key. Fails with ErrNotFound when the key
// was never created.
func (s *Store) UpdateData(ctx context.Context, key string, value any) error {
	_, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error("Error updating data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("update %s: %w", key, err)
	}
	if !ok {
		err := fmt.Errorf("cannot update non-existent data for key %s: %w", key, ErrNotFound)
		s.logger.Error("Error updating data", zap.String("key", key), zap.Error(err))
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Error updating data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.backend.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Error("Error updating data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("update %s: %w", key, err)
	}

	s.logger.Debug("Updated data", zap.String("key", key), zap.Int("bytes", len(encoded)))
	return nil
}

// DeleteData removes key. Removing a missing key is not an error.
func (s *Store) DeleteData(ctx context.Context, key string) error {
	if err := s.backend.Remove(ctx, key); err != nil {
		s.logger.Error("Error deleting data", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.logger.Debug("Deleted data", zap.String("key", key))
	return nil
}

// ClearAllData removes every key written through the backend
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		s.logger.Error("Error clearing data", zap.Error(err))
		return fmt.Errorf("clear: %w", err)
	}
	s.logger.Info("Cleared all data")
	return nil
}
