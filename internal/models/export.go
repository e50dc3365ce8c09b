package models

import "time"

// ExportDocument is the backup artifact produced by the export command.
// Restoring its three state fields into the store and reloading
// reproduces the same registry and audit history.
type ExportDocument struct {
	ExportDate time.Time       `json:"exportDate"`
	Progress   map[string]bool `json:"progress"`
	Locked     map[string]bool `json:"locked"`
	AuditLog   []AuditEntry    `json:"auditLog"`
}
