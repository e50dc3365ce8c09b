package app

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/ports/secondary"
	"github.com/example/waymark/internal/registry"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// memStore implements secondary.StateStore for testing.
type memStore struct {
	values map[string]string
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", secondary.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memStore) Remove(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// testDefs builds an n-item roadmap definition split across two phases.
func testDefs(n int) []models.ItemDefinition {
	defs := make([]models.ItemDefinition, n)
	for i := range defs {
		phase := "1"
		if i >= n/2 {
			phase = "2"
		}
		defs[i] = models.ItemDefinition{
			Index: i,
			Label: fmt.Sprintf("Topic %d", i),
			Phase: phase,
		}
	}
	return defs
}

// newTestService wires a RoadmapService over the given store with a
// fixed clock and loads it.
func newTestService(t *testing.T, store secondary.StateStore, n int) *RoadmapServiceImpl {
	t.Helper()

	diag := &bytes.Buffer{}
	reg := registry.New(store, diag)
	audit := NewAuditService(store, diag)
	gate := NewPassphraseService(store, diag)

	svc := NewRoadmapService(testDefs(n), reg, audit, gate, store, diag)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc
}
