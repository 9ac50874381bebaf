// Package fixture serves insights payloads over HTTP for local development.
//
// The server answers GET /api/insights with a payload loaded from a JSON file
// or, when no file is given, with a built-in sample. A Watcher can reload the
// file when it changes; a reload that fails to decode keeps the previous
// payload.
package fixture

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aadhaar-sanket/sanket/internal/insights"
)

// Store holds the payload currently served.
type Store struct {
	mu       sync.RWMutex
	payload  *insights.Payload
	source   string
	loadedAt time.Time
}

// NewStore returns a store serving p. source describes where p came from.
func NewStore(p *insights.Payload, source string) *Store {
	return &Store{payload: p, source: source, loadedAt: time.Now()}
}

// Get returns the current payload.
func (s *Store) Get() *insights.Payload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload
}

// Source returns the origin of the current payload and when it was loaded.
func (s *Store) Source() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.loadedAt
}

// Set replaces the current payload.
func (s *Store) Set(p *insights.Payload, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = p
	s.source = source
	s.loadedAt = time.Now()
}

// LoadFile decodes and validates the payload at path and makes it current.
// On error the current payload is left in place.
func (s *Store) LoadFile(path string) error {
	p, err := ReadPayloadFile(path)
	if err != nil {
		return err
	}
	s.Set(p, path)
	return nil
}

// ReadPayloadFile decodes the payload at path with strict row validation.
func ReadPayloadFile(path string) (*insights.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := insights.Decode(f, insights.DecodeOptions{Strict: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return p, nil
}
