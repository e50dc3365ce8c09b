// Package registry holds the in-memory authoritative view of each
// item's checked/locked state, rebuilt from the persistent store at
// load and re-serialized in full after every mutation.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/example/waymark/internal/ports/secondary"
)

// Registry caches the persisted progress and locked blobs. The store
// remains the source of truth across restarts; the cache is never
// partially written back - each mutation rewrites the whole mapping
// for its blob.
//
// Storage failures are diagnostic-only: the in-memory state keeps the
// mutation so the running session stays correct even if durability is
// lost. No two items' states are coupled.
type Registry struct {
	store   secondary.StateStore
	diag    io.Writer
	checked map[int]bool
	locked  map[int]bool
}

// New creates an empty registry backed by the given store.
// Diagnostics are written to diag.
func New(store secondary.StateStore, diag io.Writer) *Registry {
	return &Registry{
		store:   store,
		diag:    diag,
		checked: make(map[int]bool),
		locked:  make(map[int]bool),
	}
}

// Load rebuilds both flag maps from the store. A missing or malformed
// blob degrades to empty state for that blob with a diagnostic; Load
// never fails.
func (r *Registry) Load(ctx context.Context) {
	r.checked = r.loadFlags(ctx, secondary.KeyProgress)
	r.locked = r.loadFlags(ctx, secondary.KeyLocked)
}

// Checked reports the checked flag for an index.
func (r *Registry) Checked(index int) bool {
	return r.checked[index]
}

// Locked reports the locked flag for an index.
func (r *Registry) Locked(index int) bool {
	return r.locked[index]
}

// CountLocked returns the number of locked items.
func (r *Registry) CountLocked() int {
	n := 0
	for _, v := range r.locked {
		if v {
			n++
		}
	}
	return n
}

// SetChecked mutates the checked flag in memory and rewrites the
// progress blob.
func (r *Registry) SetChecked(ctx context.Context, index int, checked bool) {
	r.checked[index] = checked
	r.persist(ctx, secondary.KeyProgress, r.checked)
}

// SetLocked mutates the locked flag in memory and rewrites the locked
// blob.
func (r *Registry) SetLocked(ctx context.Context, index int, locked bool) {
	r.locked[index] = locked
	r.persist(ctx, secondary.KeyLocked, r.locked)
}

func (r *Registry) loadFlags(ctx context.Context, key string) map[int]bool {
	flags := make(map[int]bool)

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, secondary.ErrNotFound) {
		return flags
	}
	if err != nil {
		fmt.Fprintf(r.diag, "error loading %s: %v\n", key, err)
		return flags
	}

	var blob map[string]bool
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		fmt.Fprintf(r.diag, "error parsing %s: %v\n", key, err)
		return flags
	}

	for k, v := range blob {
		index, err := strconv.Atoi(k)
		if err != nil {
			fmt.Fprintf(r.diag, "ignoring non-numeric index %q in %s\n", k, key)
			continue
		}
		flags[index] = v
	}

	return flags
}

func (r *Registry) persist(ctx context.Context, key string, flags map[int]bool) {
	blob := make(map[string]bool, len(flags))
	for index, v := range flags {
		blob[strconv.Itoa(index)] = v
	}

	data, err := json.Marshal(blob)
	if err != nil {
		fmt.Fprintf(r.diag, "error encoding %s: %v\n", key, err)
		return
	}

	if err := r.store.Set(ctx, key, string(data)); err != nil {
		// Durability is at risk, the session state is not.
		fmt.Fprintf(r.diag, "error saving %s: %v\n", key, err)
	}
}
