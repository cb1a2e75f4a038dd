// Package memory provides a process-local document.Blob. The menu is lost on restart.
package memory

import (
	"context"
	"errors"
	"sync"
)

// ErrNoDocument is returned by Load before anything was stored.
var ErrNoDocument = errors.New("memory: no menu document")

// Blob keeps the menu document in memory.
type Blob struct {
	mu   sync.RWMutex
	data []byte
}

// New returns an empty Blob.
func New() *Blob {
	return &Blob{}
}

func (b *Blob) Load(_ context.Context) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil, ErrNoDocument
	}
	return append([]byte(nil), b.data...), nil
}

func (b *Blob) Store(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte{}, data...)
	return nil
}

func (b *Blob) CreateIfAbsent(_ context.Context, data []byte) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data != nil {
		return false, nil
	}
	b.data = append([]byte{}, data...)
	return true, nil
}

func (b *Blob) Ping(_ context.Context) error {
	return nil
}
