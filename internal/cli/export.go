package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export progress, locked states, and audit log as a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			doc, err := wire.RoadmapService().Export(ctx)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode export: %w", err)
			}

			if output == "-" {
				fmt.Println(string(data))
				return nil
			}

			if output == "" {
				output = fmt.Sprintf("roadmap-backup-%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			green.Printf("✓ Progress exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default roadmap-backup-YYYY-MM-DD.json, - for stdout)")
	return cmd
}
