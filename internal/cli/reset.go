package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset ALL progress, locked states, and the audit log",
		Long: `Irreversibly clear all completed items, unlock every locked topic,
and delete the audit log. The passphrase is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			confirmed := yes
			if !yes {
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Reset ALL progress and locked states?").
						Description("Clears completed items, unlocks all topics, and deletes the audit log. This CANNOT be undone.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						confirmed = false
					} else {
						return fmt.Errorf("confirmation prompt failed: %w", err)
					}
				}
			}

			if !confirmed {
				fmt.Println("Reset cancelled. Nothing changed.")
				return nil
			}

			if err := wire.RoadmapService().Reset(ctx); err != nil {
				return err
			}

			green.Println("✓ All progress reset")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
