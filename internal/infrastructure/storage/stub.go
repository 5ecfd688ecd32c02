package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/storefront/backend/internal/application/media"
)

var _ media.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage keeps objects in memory. Used in development and
// tests; never in production (config validation rejects it there).
type StubObjectStorage struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

func (s *StubObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return s.BaseURL + "/" + key, nil
}

func (s *StubObjectStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *StubObjectStorage) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}
