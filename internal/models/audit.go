package models

import "time"

// AuditAction identifies the kind of state transition an audit entry records.
type AuditAction string

const (
	ActionLock             AuditAction = "lock"
	ActionUnlock           AuditAction = "unlock"
	ActionEditModeEnabled  AuditAction = "edit_mode_enabled"
	ActionEditModeDisabled AuditAction = "edit_mode_disabled"
)

// SystemIndex is the sentinel item index used for mode-change entries,
// which are not tied to any single item.
const SystemIndex = -1

// SystemLabel is the label recorded for mode-change entries.
const SystemLabel = "System"

// AuditEntry is an immutable record of a lock/unlock/mode transition.
// Entries are append-only; ordering is insertion order.
type AuditEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Action    AuditAction `json:"action"`
	Index     int         `json:"checkboxIndex"`
	Label     string      `json:"topicName"`
	EditMode  bool        `json:"editMode"`
}
