package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Restore progress, locked states, and audit log from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			var doc models.ExportDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse backup: %w", err)
			}

			if err := wire.RoadmapService().Import(ctx, &doc); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			green.Printf("✓ Progress restored from %s\n", args[0])
			printProgressAfterTransition(ctx)
			return nil
		},
	}
}
