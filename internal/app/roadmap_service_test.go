package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/ports/secondary"
)

func TestRequestCheckAwaitsConfirmationWithoutMutation(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	result, err := svc.RequestTransition(ctx, 5, true)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusAwaitingConfirmation {
		t.Fatalf("Status = %q, want awaiting_confirmation", result.Status)
	}
	if result.Label != "Topic 5" {
		t.Errorf("Label = %q, want the item name for the prompt", result.Label)
	}

	// Nothing may change until confirmation is accepted.
	it, _ := svc.Item(ctx, 5)
	if it.Checked || it.Locked {
		t.Errorf("item 5 = (%v, %v) while pending, want untouched", it.Checked, it.Locked)
	}
	if len(store.values) != 1 { // passphrase default only
		t.Errorf("store has %d keys while pending, want only the passphrase", len(store.values))
	}
}

func TestCancelLeavesStateIdentical(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	before := svc.Items(ctx)
	storeBefore := make(map[string]string, len(store.values))
	for k, v := range store.values {
		storeBefore[k] = v
	}

	if _, err := svc.RequestTransition(ctx, 5, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	result, err := svc.Cancel(ctx)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if result.Status != primary.StatusCancelled {
		t.Errorf("Status = %q, want cancelled", result.Status)
	}

	if !reflect.DeepEqual(before, svc.Items(ctx)) {
		t.Error("cancel must leave items identical to the pre-request state")
	}
	if !reflect.DeepEqual(storeBefore, store.values) {
		t.Error("cancel must not write to the store")
	}
	if logs := svc.audit.List(ctx); len(logs) != 0 {
		t.Errorf("cancel appended %d audit entries, want 0", len(logs))
	}
}

func TestConfirmLocksItemAndAppendsAudit(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	if _, err := svc.RequestTransition(ctx, 5, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	result, err := svc.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if result.Status != primary.StatusApplied {
		t.Fatalf("Status = %q, want applied", result.Status)
	}

	it, _ := svc.Item(ctx, 5)
	if !it.Checked || !it.Locked {
		t.Errorf("item 5 = (%v, %v), want checked and locked", it.Checked, it.Locked)
	}

	logs := svc.audit.List(ctx)
	if len(logs) != 1 {
		t.Fatalf("audit has %d entries, want 1", len(logs))
	}
	entry := logs[0]
	if entry.Action != models.ActionLock || entry.Index != 5 || entry.Label != "Topic 5" || entry.EditMode {
		t.Errorf("audit entry = %+v, want normal-mode lock of item 5", entry)
	}

	// 1 of 12 completed.
	if stats := svc.Statistics(ctx); stats.Percentage != 8 {
		t.Errorf("Percentage = %d, want 8", stats.Percentage)
	}
}

func TestSecondRequestWhilePendingIsRejected(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)
	ctx := context.Background()

	if _, err := svc.RequestTransition(ctx, 5, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}

	result, err := svc.RequestTransition(ctx, 6, true)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusRejected {
		t.Fatalf("Status = %q, want rejected", result.Status)
	}
	if result.Reason != "confirmation for item 5 is still pending" {
		t.Errorf("Reason = %q", result.Reason)
	}
}

func TestConfirmWithoutPendingIsRejected(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)

	result, err := svc.Confirm(context.Background())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if result.Status != primary.StatusRejected || result.Reason != "no confirmation is pending" {
		t.Errorf("result = %+v, want rejection for missing pending confirmation", result)
	}
}

func TestLockedItemRejectedInNormalMode(t *testing.T) {
	store := newMemStore()
	store.values[secondary.KeyProgress] = `{"2":true}`
	store.values[secondary.KeyLocked] = `{"2":true}`
	svc := newTestService(t, store, 12)

	result, err := svc.RequestTransition(context.Background(), 2, false)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusRejected {
		t.Fatalf("Status = %q, want rejected", result.Status)
	}
	if result.Reason != "item 2 is locked. Enter edit mode to change it" {
		t.Errorf("Reason = %q", result.Reason)
	}
}

func TestStaleLockWithoutCheckedStillBlocks(t *testing.T) {
	// Abnormal persisted data: locked without checked. Not validated at
	// load; the lock wins for interaction purposes.
	store := newMemStore()
	store.values[secondary.KeyLocked] = `{"4":true}`
	svc := newTestService(t, store, 12)

	result, err := svc.RequestTransition(context.Background(), 4, true)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusRejected {
		t.Errorf("Status = %q, want rejected while locked", result.Status)
	}
}

func TestEditModeTogglesApplyImmediately(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)
	ctx := context.Background()

	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("EnableEditMode failed: %v", err)
	}

	result, err := svc.RequestTransition(ctx, 3, true)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusApplied {
		t.Fatalf("Status = %q, want applied with no confirmation step", result.Status)
	}
	if !result.Item.Checked || !result.Item.Locked {
		t.Errorf("item = (%v, %v), want checked and locked", result.Item.Checked, result.Item.Locked)
	}

	logs := svc.audit.List(ctx)
	if len(logs) != 2 { // mode_enabled + lock
		t.Fatalf("audit has %d entries, want 2", len(logs))
	}
	if logs[1].Action != models.ActionLock || !logs[1].EditMode {
		t.Errorf("lock entry = %+v, want edit-mode lock", logs[1])
	}
}

func TestEditModeUnlockScenario(t *testing.T) {
	store := newMemStore()
	store.values[secondary.KeyProgress] = `{"5":true}`
	store.values[secondary.KeyLocked] = `{"5":true}`
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("EnableEditMode failed: %v", err)
	}

	result, err := svc.RequestTransition(ctx, 5, false)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusApplied {
		t.Fatalf("Status = %q, want applied", result.Status)
	}
	if result.Item.Checked || result.Item.Locked {
		t.Errorf("item 5 = (%v, %v), want unchecked and unlocked", result.Item.Checked, result.Item.Locked)
	}

	unlocks := 0
	for _, entry := range svc.audit.List(ctx) {
		if entry.Action == models.ActionUnlock {
			unlocks++
			if entry.Index != 5 || !entry.EditMode {
				t.Errorf("unlock entry = %+v, want edit-mode unlock of item 5", entry)
			}
		}
	}
	if unlocks != 1 {
		t.Fatalf("audit has %d unlock entries, want 1", unlocks)
	}

	// Exiting edit mode leaves the item at its current flags, not
	// re-locked.
	if err := svc.DisableEditMode(ctx); err != nil {
		t.Fatalf("DisableEditMode failed: %v", err)
	}
	it, _ := svc.Item(ctx, 5)
	if it.Checked || it.Locked {
		t.Errorf("item 5 after exiting edit mode = (%v, %v), want still unlocked", it.Checked, it.Locked)
	}
}

func TestModeToggleAppendsExactlyTwoEntries(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)
	ctx := context.Background()

	before := svc.Items(ctx)

	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("EnableEditMode failed: %v", err)
	}
	if err := svc.DisableEditMode(ctx); err != nil {
		t.Fatalf("DisableEditMode failed: %v", err)
	}

	if !reflect.DeepEqual(before, svc.Items(ctx)) {
		t.Error("mode toggling must not alter item values")
	}

	logs := svc.audit.List(ctx)
	if len(logs) != 2 {
		t.Fatalf("audit has %d entries, want exactly 2", len(logs))
	}
	if logs[0].Action != models.ActionEditModeEnabled || logs[1].Action != models.ActionEditModeDisabled {
		t.Errorf("actions = %q, %q", logs[0].Action, logs[1].Action)
	}
	for _, entry := range logs {
		if entry.Index != models.SystemIndex || entry.Label != models.SystemLabel {
			t.Errorf("mode entry = %+v, want system sentinel index and label", entry)
		}
	}
}

func TestWrongPassphraseLeavesModeUnchanged(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)
	ctx := context.Background()

	err := svc.EnableEditMode(ctx, "wrong")
	if !errors.Is(err, primary.ErrWrongPassphrase) {
		t.Fatalf("EnableEditMode error = %v, want ErrWrongPassphrase", err)
	}
	if svc.EditMode() {
		t.Error("mode must stay disabled after a failed attempt")
	}
	if logs := svc.audit.List(ctx); len(logs) != 0 {
		t.Errorf("failed attempt appended %d audit entries, want 0", len(logs))
	}

	// Attempts are unlimited; a later correct attempt succeeds.
	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("retry with correct passphrase failed: %v", err)
	}
}

func TestEnableEditModeCancelsPendingConfirmation(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)
	ctx := context.Background()

	if _, err := svc.RequestTransition(ctx, 5, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("EnableEditMode failed: %v", err)
	}

	// The pending confirmation is gone: confirming now is rejected and
	// item 5 stays untouched.
	result, err := svc.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if result.Status != primary.StatusRejected {
		t.Errorf("Status = %q, want rejected after auto-cancel", result.Status)
	}
	it, _ := svc.Item(ctx, 5)
	if it.Checked || it.Locked {
		t.Errorf("item 5 = (%v, %v), want untouched", it.Checked, it.Locked)
	}
}

func TestReplayAtLoadAppendsNoAuditEntries(t *testing.T) {
	store := newMemStore()
	store.values[secondary.KeyProgress] = `{"0":true,"5":true}`
	store.values[secondary.KeyLocked] = `{"0":true,"5":true}`

	svc := newTestService(t, store, 12)
	ctx := context.Background()

	first := svc.Items(ctx)
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	second := svc.Items(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Error("two loads of the same blobs must yield identical registries")
	}
	if logs := svc.audit.List(ctx); len(logs) != 0 {
		t.Errorf("replay at load appended %d audit entries, want 0", len(logs))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	if _, err := svc.RequestTransition(ctx, 5, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if _, err := svc.Confirm(ctx); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if err := svc.EnableEditMode(ctx, DefaultPassphrase); err != nil {
		t.Fatalf("EnableEditMode failed: %v", err)
	}
	if _, err := svc.RequestTransition(ctx, 7, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if err := svc.DisableEditMode(ctx); err != nil {
		t.Fatalf("DisableEditMode failed: %v", err)
	}

	doc, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	itemsBefore := svc.Items(ctx)
	auditBefore := svc.audit.List(ctx)

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if err := svc.Import(ctx, doc); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if !reflect.DeepEqual(itemsBefore, svc.Items(ctx)) {
		t.Error("import must reproduce the exported item registry")
	}
	if !reflect.DeepEqual(auditBefore, svc.audit.List(ctx)) {
		t.Error("import must reproduce the exported audit history")
	}
}

func TestExportOnFreshStoreIsEmptyDocument(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)

	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(doc.Progress) != 0 || len(doc.Locked) != 0 || len(doc.AuditLog) != 0 {
		t.Errorf("fresh export = %+v, want empty blobs", doc)
	}
	if doc.ExportDate.IsZero() {
		t.Error("export date must be set")
	}
}

func TestResetClearsStateButKeepsPassphrase(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, 12)
	ctx := context.Background()

	if _, err := svc.RequestTransition(ctx, 1, true); err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if _, err := svc.Confirm(ctx); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	for _, it := range svc.Items(ctx) {
		if it.Checked || it.Locked {
			t.Errorf("item %d = (%v, %v) after reset, want defaults", it.Index, it.Checked, it.Locked)
		}
	}
	if logs := svc.audit.List(ctx); len(logs) != 0 {
		t.Errorf("audit has %d entries after reset, want 0", len(logs))
	}
	if _, ok := store.values[secondary.KeyPassphrase]; !ok {
		t.Error("reset must not delete the passphrase")
	}
}

func TestUnknownItemRejected(t *testing.T) {
	svc := newTestService(t, newMemStore(), 12)

	result, err := svc.RequestTransition(context.Background(), 99, true)
	if err != nil {
		t.Fatalf("RequestTransition failed: %v", err)
	}
	if result.Status != primary.StatusRejected {
		t.Errorf("Status = %q, want rejected for unknown item", result.Status)
	}
}
