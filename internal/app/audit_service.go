package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface over the blob
// store. The log is a single JSON array rewritten on every append,
// capped only by storage capacity.
type AuditServiceImpl struct {
	store secondary.StateStore
	diag  io.Writer
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(store secondary.StateStore, diag io.Writer) *AuditServiceImpl {
	return &AuditServiceImpl{
		store: store,
		diag:  diag,
	}
}

// Append records an entry at the end of the log. Storage failures are
// diagnostic-only; the session proceeds as if the append succeeded.
func (s *AuditServiceImpl) Append(ctx context.Context, entry models.AuditEntry) {
	logs := append(s.List(ctx), entry)

	data, err := json.Marshal(logs)
	if err != nil {
		fmt.Fprintf(s.diag, "error encoding audit log: %v\n", err)
		return
	}

	if err := s.store.Set(ctx, secondary.KeyAudit, string(data)); err != nil {
		fmt.Fprintf(s.diag, "error saving audit log: %v\n", err)
	}
}

// List returns all entries in insertion order. A missing or malformed
// log degrades to empty.
func (s *AuditServiceImpl) List(ctx context.Context) []models.AuditEntry {
	raw, err := s.store.Get(ctx, secondary.KeyAudit)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		fmt.Fprintf(s.diag, "error loading audit log: %v\n", err)
		return nil
	}

	var logs []models.AuditEntry
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		fmt.Fprintf(s.diag, "error parsing audit log: %v\n", err)
		return nil
	}

	return logs
}

// Ensure AuditServiceImpl implements the interface.
var _ primary.AuditService = (*AuditServiceImpl)(nil)
