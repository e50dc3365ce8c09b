// Package primary defines the primary ports (driving interfaces) for
// the application. The CLI layer calls these; tests call them directly
// without simulating interaction events.
package primary

import (
	"context"
	"errors"

	"github.com/example/waymark/internal/models"
)

// ErrWrongPassphrase is returned when edit mode is requested with an
// incorrect passphrase. Recoverable; retries are unlimited.
var ErrWrongPassphrase = errors.New("incorrect passphrase")

// TransitionStatus classifies the result of a transition request.
type TransitionStatus string

const (
	// StatusApplied means the transition took effect and was persisted.
	StatusApplied TransitionStatus = "applied"
	// StatusAwaitingConfirmation means the item entered the pending
	// state and nothing was mutated yet.
	StatusAwaitingConfirmation TransitionStatus = "awaiting_confirmation"
	// StatusRejected means the request violated a guard; nothing changed.
	StatusRejected TransitionStatus = "rejected"
	// StatusCancelled means a pending confirmation was abandoned with
	// no side effects.
	StatusCancelled TransitionStatus = "cancelled"
)

// TransitionResult is the outcome of a transition request or
// confirmation resolution.
type TransitionResult struct {
	Status TransitionStatus
	Index  int
	Label  string
	Reason string       // populated when rejected
	Item   *models.Item // post-transition snapshot when applied
}

// RoadmapService is the primary port governing item state. All
// transitions flow through RequestTransition; the confirmation step is
// the only interruptible operation.
type RoadmapService interface {
	// Load reconciles the in-memory registry with the persistent store.
	// Replaying persisted state never appends audit entries. Malformed
	// blobs degrade to empty state; Load only fails on store access
	// errors unrelated to parsing.
	Load(ctx context.Context) error

	// Items returns the current view of every item in definition order.
	Items(ctx context.Context) []models.Item

	// Item returns the current view of a single item.
	Item(ctx context.Context, index int) (*models.Item, error)

	// RequestTransition requests that the item at index move to the
	// intended checked state. In normal mode a check request returns
	// StatusAwaitingConfirmation and must be resolved via Confirm or
	// Cancel before any other request is accepted.
	RequestTransition(ctx context.Context, index int, intendedChecked bool) (*TransitionResult, error)

	// Confirm applies the pending transition: the item becomes checked
	// and locked, the change is persisted, and a lock audit entry is
	// appended.
	Confirm(ctx context.Context) (*TransitionResult, error)

	// Cancel abandons the pending transition, leaving state identical
	// to the pre-request state. No writes, no audit entry.
	Cancel(ctx context.Context) (*TransitionResult, error)

	// EditMode reports whether administrative mode is active. The flag
	// is session-local and never persisted.
	EditMode() bool

	// EnableEditMode verifies the passphrase and, on success, enables
	// administrative mode and appends an edit_mode_enabled entry. A
	// pending confirmation is cancelled first. Returns
	// ErrWrongPassphrase on failure with mode unchanged.
	EnableEditMode(ctx context.Context, passphrase string) error

	// DisableEditMode exits administrative mode (no passphrase needed)
	// and appends an edit_mode_disabled entry. Item values are not
	// altered.
	DisableEditMode(ctx context.Context) error

	// Statistics returns the aggregate progress snapshot.
	Statistics(ctx context.Context) models.Statistics

	// PhaseProgress returns the completion percentage per phase id.
	PhaseProgress(ctx context.Context) map[string]int

	// Complete reports whether every item is checked. Gates the
	// certificate affordance.
	Complete(ctx context.Context) bool

	// Export produces the backup document from the persisted blobs.
	Export(ctx context.Context) (*models.ExportDocument, error)

	// Import restores a backup document's state blobs into the store
	// and reloads the registry from them.
	Import(ctx context.Context, doc *models.ExportDocument) error

	// Reset irreversibly clears progress, locked states, and the audit
	// log. The passphrase survives.
	Reset(ctx context.Context) error
}
