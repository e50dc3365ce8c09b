package primary

import (
	"context"

	"github.com/example/waymark/internal/models"
)

// AuditService is the primary port for the append-only transition log.
// Storage failures degrade to diagnostics; an append is never reported
// as fatal to the caller because only durability is at risk, not the
// in-memory session.
type AuditService interface {
	// Append records an entry at the end of the log.
	Append(ctx context.Context, entry models.AuditEntry)

	// List returns all entries in insertion order. A malformed
	// persisted log degrades to an empty slice.
	List(ctx context.Context) []models.AuditEntry
}
