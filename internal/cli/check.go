package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/wire"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "check [index]",
		Short: "Mark an item as complete (locks it)",
		Long: `Mark the item at the given index as complete. Completion is
confirmed before it takes effect and then locks the item: it can only
be changed again through edit mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			svc := wire.RoadmapService()
			result, err := svc.RequestTransition(ctx, index, true)
			if err != nil {
				return fmt.Errorf("failed to request transition: %w", err)
			}

			if result.Status == primary.StatusRejected {
				return fmt.Errorf("%s", result.Reason)
			}

			if result.Status == primary.StatusAwaitingConfirmation {
				confirmed := yes
				if !yes {
					form := huh.NewForm(huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Mark %q as complete?", result.Label)).
							Description("This locks the item. Changing it later requires edit mode.").
							Value(&confirmed),
					))
					if err := form.Run(); err != nil {
						// Escape or an aborted prompt cancels with no
						// side effects.
						if errors.Is(err, huh.ErrUserAborted) {
							confirmed = false
						} else {
							return fmt.Errorf("confirmation prompt failed: %w", err)
						}
					}
				}

				if !confirmed {
					if _, err := svc.Cancel(ctx); err != nil {
						return err
					}
					fmt.Println("Cancelled. Nothing changed.")
					return nil
				}

				if result, err = svc.Confirm(ctx); err != nil {
					return err
				}
			}

			green.Printf("✓ Completed and locked: %s\n", result.Label)
			printProgressAfterTransition(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
