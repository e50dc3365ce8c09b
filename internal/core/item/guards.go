// Package item contains the pure business logic for checklist item
// transitions. Guards are pure functions that evaluate preconditions
// without side effects; the service layer owns persistence and audit.
package item

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// NoPending marks the absence of an outstanding confirmation.
const NoPending = -1

// TransitionContext provides context for transition guards.
// PendingIndex is the index of the item currently awaiting
// confirmation, or NoPending.
type TransitionContext struct {
	Index           int
	Exists          bool
	Checked         bool
	Locked          bool
	IntendedChecked bool
	EditMode        bool
	PendingIndex    int
}

// CanRequestTransition evaluates whether an item transition may be
// requested.
// Rules:
// - Item must exist in the roadmap definition
// - Only one confirmation may be pending at a time
// - Normal mode: locked items are not interactive; checking an
//   already-checked item or unchecking an unchecked item is a no-op
//   and rejected
// - Edit mode: every item is interactive, but the intended state must
//   differ from the current state
func CanRequestTransition(ctx TransitionContext) GuardResult {
	// Rule 1: item must exist
	if !ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %d not found in roadmap", ctx.Index),
		}
	}

	// Rule 2: reject a second request while a confirmation is pending
	if ctx.PendingIndex != NoPending {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("confirmation for item %d is still pending", ctx.PendingIndex),
		}
	}

	if ctx.IntendedChecked == ctx.Checked {
		state := "unchecked"
		if ctx.Checked {
			state = "checked"
		}
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %d is already %s", ctx.Index, state),
		}
	}

	// Edit mode relaxes lock enforcement entirely
	if ctx.EditMode {
		return GuardResult{Allowed: true}
	}

	// Rule 3: locked items are terminal outside edit mode
	if ctx.Locked {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %d is locked. Enter edit mode to change it", ctx.Index),
		}
	}

	return GuardResult{Allowed: true}
}

// NeedsConfirmation reports whether an allowed request must pass
// through the confirmation step before taking effect. Only normal-mode
// check requests are gated; edit-mode toggles and normal-mode unchecks
// of never-locked items apply immediately.
func NeedsConfirmation(ctx TransitionContext) bool {
	return !ctx.EditMode && ctx.IntendedChecked
}

// CanResolveConfirmation evaluates whether a pending confirmation can
// be confirmed or cancelled.
func CanResolveConfirmation(pendingIndex int) GuardResult {
	if pendingIndex == NoPending {
		return GuardResult{
			Allowed: false,
			Reason:  "no confirmation is pending",
		}
	}
	return GuardResult{Allowed: true}
}
