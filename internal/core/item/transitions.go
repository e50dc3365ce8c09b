package item

import "github.com/example/waymark/internal/models"

// Outcome is the value-object result of applying a transition. Action
// is empty when the transition records no audit entry.
type Outcome struct {
	Checked bool
	Locked  bool
	Action  models.AuditAction
}

// ApplyCheck returns the outcome of a confirmed (or edit-mode) check.
// Completing an item always locks it.
func ApplyCheck() Outcome {
	return Outcome{Checked: true, Locked: true, Action: models.ActionLock}
}

// ApplyUncheck returns the outcome of unchecking an item. Releasing a
// lock records an unlock entry; unchecking an item that was never
// locked (abnormal persisted data replayed in normal mode) records
// nothing, since no lock is released.
func ApplyUncheck(wasLocked bool) Outcome {
	if wasLocked {
		return Outcome{Action: models.ActionUnlock}
	}
	return Outcome{}
}
