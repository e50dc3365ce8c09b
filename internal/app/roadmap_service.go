package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/example/waymark/internal/core/item"
	"github.com/example/waymark/internal/core/progress"
	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/ports/secondary"
	"github.com/example/waymark/internal/registry"
)

// RoadmapServiceImpl implements the RoadmapService interface. It owns
// the session-local edit-mode flag and the single pending-confirmation
// slot; both reset on every new process, matching the rule that mode
// is never persisted.
type RoadmapServiceImpl struct {
	defs     []models.ItemDefinition
	registry *registry.Registry
	audit    primary.AuditService
	gate     primary.PassphraseService
	store    secondary.StateStore
	diag     io.Writer

	editMode bool
	pending  int

	now func() time.Time
}

// NewRoadmapService creates a new RoadmapService with injected
// dependencies. Call Load before issuing transitions.
func NewRoadmapService(
	defs []models.ItemDefinition,
	reg *registry.Registry,
	audit primary.AuditService,
	gate primary.PassphraseService,
	store secondary.StateStore,
	diag io.Writer,
) *RoadmapServiceImpl {
	return &RoadmapServiceImpl{
		defs:     defs,
		registry: reg,
		audit:    audit,
		gate:     gate,
		store:    store,
		diag:     diag,
		pending:  item.NoPending,
		now:      time.Now,
	}
}

// Load reconciles the registry with the store and establishes the
// default passphrase on first run. Replaying persisted locks appends
// no audit entries.
func (s *RoadmapServiceImpl) Load(ctx context.Context) error {
	s.registry.Load(ctx)
	s.gate.EnsureDefault(ctx)
	s.editMode = false
	s.pending = item.NoPending
	return nil
}

// Items returns the current view of every item in definition order.
func (s *RoadmapServiceImpl) Items(ctx context.Context) []models.Item {
	items := make([]models.Item, len(s.defs))
	for i, def := range s.defs {
		items[i] = s.view(def)
	}
	return items
}

// Item returns the current view of a single item.
func (s *RoadmapServiceImpl) Item(ctx context.Context, index int) (*models.Item, error) {
	def, ok := s.def(index)
	if !ok {
		return nil, fmt.Errorf("item %d not found in roadmap", index)
	}
	view := s.view(def)
	return &view, nil
}

// RequestTransition validates the request against the current mode and
// item state. Normal-mode check requests are intercepted into the
// pending-confirmation state before any mutation; everything else that
// passes the guards applies atomically.
func (s *RoadmapServiceImpl) RequestTransition(ctx context.Context, index int, intendedChecked bool) (*primary.TransitionResult, error) {
	def, exists := s.def(index)

	tctx := item.TransitionContext{
		Index:           index,
		Exists:          exists,
		Checked:         s.registry.Checked(index),
		Locked:          s.registry.Locked(index),
		IntendedChecked: intendedChecked,
		EditMode:        s.editMode,
		PendingIndex:    s.pending,
	}

	if guard := item.CanRequestTransition(tctx); !guard.Allowed {
		return &primary.TransitionResult{
			Status: primary.StatusRejected,
			Index:  index,
			Label:  def.Label,
			Reason: guard.Reason,
		}, nil
	}

	if item.NeedsConfirmation(tctx) {
		s.pending = index
		return &primary.TransitionResult{
			Status: primary.StatusAwaitingConfirmation,
			Index:  index,
			Label:  def.Label,
		}, nil
	}

	return s.apply(ctx, def, intendedChecked), nil
}

// Confirm resolves the pending confirmation by applying the check.
func (s *RoadmapServiceImpl) Confirm(ctx context.Context) (*primary.TransitionResult, error) {
	if guard := item.CanResolveConfirmation(s.pending); !guard.Allowed {
		return &primary.TransitionResult{
			Status: primary.StatusRejected,
			Index:  item.NoPending,
			Reason: guard.Reason,
		}, nil
	}

	def, _ := s.def(s.pending)
	s.pending = item.NoPending
	return s.apply(ctx, def, true), nil
}

// Cancel abandons the pending confirmation. State is left identical to
// the pre-request state: no writes, no audit entry.
func (s *RoadmapServiceImpl) Cancel(ctx context.Context) (*primary.TransitionResult, error) {
	if guard := item.CanResolveConfirmation(s.pending); !guard.Allowed {
		return &primary.TransitionResult{
			Status: primary.StatusRejected,
			Index:  item.NoPending,
			Reason: guard.Reason,
		}, nil
	}

	def, _ := s.def(s.pending)
	s.pending = item.NoPending
	return &primary.TransitionResult{
		Status: primary.StatusCancelled,
		Index:  def.Index,
		Label:  def.Label,
	}, nil
}

// EditMode reports whether administrative mode is active.
func (s *RoadmapServiceImpl) EditMode() bool {
	return s.editMode
}

// EnableEditMode authenticates and enters administrative mode. A
// pending confirmation is auto-cancelled first, so the mode flip never
// races an open prompt.
func (s *RoadmapServiceImpl) EnableEditMode(ctx context.Context, passphrase string) error {
	if s.pending != item.NoPending {
		s.pending = item.NoPending
	}

	if !s.gate.Verify(ctx, passphrase) {
		return primary.ErrWrongPassphrase
	}
	if s.editMode {
		return nil
	}

	s.editMode = true
	s.audit.Append(ctx, models.AuditEntry{
		Timestamp: s.now(),
		Action:    models.ActionEditModeEnabled,
		Index:     models.SystemIndex,
		Label:     models.SystemLabel,
		EditMode:  true,
	})
	return nil
}

// DisableEditMode exits administrative mode. Locked presentation is
// re-applied by the caller from the unchanged checked/locked values.
func (s *RoadmapServiceImpl) DisableEditMode(ctx context.Context) error {
	if !s.editMode {
		return nil
	}

	s.editMode = false
	s.audit.Append(ctx, models.AuditEntry{
		Timestamp: s.now(),
		Action:    models.ActionEditModeDisabled,
		Index:     models.SystemIndex,
		Label:     models.SystemLabel,
		EditMode:  false,
	})
	return nil
}

// Statistics returns the aggregate progress snapshot.
func (s *RoadmapServiceImpl) Statistics(ctx context.Context) models.Statistics {
	return progress.Collect(s.Items(ctx))
}

// PhaseProgress returns the completion percentage per phase id.
func (s *RoadmapServiceImpl) PhaseProgress(ctx context.Context) map[string]int {
	return progress.ByPhase(s.Items(ctx))
}

// Complete reports whether every item is checked.
func (s *RoadmapServiceImpl) Complete(ctx context.Context) bool {
	return progress.Complete(s.Items(ctx))
}

// Export produces the backup document from the persisted blobs.
func (s *RoadmapServiceImpl) Export(ctx context.Context) (*models.ExportDocument, error) {
	doc := &models.ExportDocument{
		ExportDate: s.now(),
		Progress:   s.exportBlob(ctx, secondary.KeyProgress),
		Locked:     s.exportBlob(ctx, secondary.KeyLocked),
		AuditLog:   s.audit.List(ctx),
	}
	if doc.AuditLog == nil {
		doc.AuditLog = []models.AuditEntry{}
	}
	return doc, nil
}

// Import restores a backup document's state blobs and reloads the
// registry from them.
func (s *RoadmapServiceImpl) Import(ctx context.Context, doc *models.ExportDocument) error {
	if err := s.importBlob(ctx, secondary.KeyProgress, doc.Progress); err != nil {
		return err
	}
	if err := s.importBlob(ctx, secondary.KeyLocked, doc.Locked); err != nil {
		return err
	}

	auditLog := doc.AuditLog
	if auditLog == nil {
		auditLog = []models.AuditEntry{}
	}
	data, err := json.Marshal(auditLog)
	if err != nil {
		return fmt.Errorf("failed to encode audit log: %w", err)
	}
	if err := s.store.Set(ctx, secondary.KeyAudit, string(data)); err != nil {
		return fmt.Errorf("failed to restore audit log: %w", err)
	}

	s.registry.Load(ctx)
	return nil
}

// Reset irreversibly clears progress, locked states, and the audit
// log. The passphrase survives. The registry is reloaded to its empty
// state.
func (s *RoadmapServiceImpl) Reset(ctx context.Context) error {
	for _, key := range []string{secondary.KeyProgress, secondary.KeyLocked, secondary.KeyAudit} {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
	}

	s.registry.Load(ctx)
	s.pending = item.NoPending
	return nil
}

// apply executes an allowed, unconfirmed-or-confirmed transition as
// one logical unit: registry mutation, persistence, audit append.
func (s *RoadmapServiceImpl) apply(ctx context.Context, def models.ItemDefinition, intendedChecked bool) *primary.TransitionResult {
	var out item.Outcome
	if intendedChecked {
		out = item.ApplyCheck()
	} else {
		out = item.ApplyUncheck(s.registry.Locked(def.Index))
	}

	s.registry.SetChecked(ctx, def.Index, out.Checked)
	s.registry.SetLocked(ctx, def.Index, out.Locked)

	if out.Action != "" {
		s.audit.Append(ctx, models.AuditEntry{
			Timestamp: s.now(),
			Action:    out.Action,
			Index:     def.Index,
			Label:     def.Label,
			EditMode:  s.editMode,
		})
	}

	view := s.view(def)
	return &primary.TransitionResult{
		Status: primary.StatusApplied,
		Index:  def.Index,
		Label:  def.Label,
		Item:   &view,
	}
}

func (s *RoadmapServiceImpl) def(index int) (models.ItemDefinition, bool) {
	if index < 0 || index >= len(s.defs) {
		return models.ItemDefinition{}, false
	}
	return s.defs[index], true
}

func (s *RoadmapServiceImpl) view(def models.ItemDefinition) models.Item {
	return models.Item{
		Index:   def.Index,
		Label:   def.Label,
		Phase:   def.Phase,
		Checked: s.registry.Checked(def.Index),
		Locked:  s.registry.Locked(def.Index),
	}
}

func (s *RoadmapServiceImpl) exportBlob(ctx context.Context, key string) map[string]bool {
	blob := make(map[string]bool)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, secondary.ErrNotFound) {
		return blob
	}
	if err != nil {
		fmt.Fprintf(s.diag, "error loading %s: %v\n", key, err)
		return blob
	}

	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		fmt.Fprintf(s.diag, "error parsing %s: %v\n", key, err)
		return make(map[string]bool)
	}
	return blob
}

func (s *RoadmapServiceImpl) importBlob(ctx context.Context, key string, blob map[string]bool) error {
	if blob == nil {
		blob = make(map[string]bool)
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to restore %s: %w", key, err)
	}
	return nil
}

// Ensure RoadmapServiceImpl implements the interface.
var _ primary.RoadmapService = (*RoadmapServiceImpl)(nil)
