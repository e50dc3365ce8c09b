package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// AuditCmd returns the audit command. Read-only inspection aid.
func AuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log of lock/unlock and mode changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			printAuditLog(wire.AuditService().List(context.Background()))
			return nil
		},
	}
}
