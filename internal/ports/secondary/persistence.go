// Package secondary defines the secondary ports (driven adapters) for
// the application. These are the interfaces through which the
// application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by StateStore.Get when no value exists for
// the key.
var ErrNotFound = errors.New("key not found")

// Store keys for the four persisted blobs. Values are JSON documents
// except the passphrase, which is stored as a plain string.
const (
	KeyProgress   = "roadmap_progress"
	KeyLocked     = "roadmap_locked"
	KeyAudit      = "roadmap_audit"
	KeyPassphrase = "roadmap_passphrase"
)

// StateStore defines the secondary port for the persistent string-keyed
// blob store. Semantics are last-write-wins with no transactions across
// keys; the application treats each Set as an independent full rewrite
// of that blob.
type StateStore interface {
	// Get retrieves the value stored under key. Returns ErrNotFound
	// when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
