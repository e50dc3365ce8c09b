package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/ports/primary"
	"github.com/example/waymark/internal/wire"
)

// UncheckCmd returns the uncheck command
func UncheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck [index]",
		Short: "Clear an item's checked state",
		Long: `Clear the checked state of the item at the given index. Locked
items cannot be unchecked here; use ` + "`waymark edit`" + ` to unlock them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			result, err := wire.RoadmapService().RequestTransition(ctx, index, false)
			if err != nil {
				return fmt.Errorf("failed to request transition: %w", err)
			}

			if result.Status == primary.StatusRejected {
				return fmt.Errorf("%s", result.Reason)
			}

			fmt.Printf("Unchecked: %s\n", result.Label)
			printProgressAfterTransition(ctx)
			return nil
		},
	}
}
