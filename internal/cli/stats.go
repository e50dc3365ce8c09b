package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// StatsCmd returns the stats command. Read-only inspection aid.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			printStats(wire.RoadmapService().Statistics(context.Background()))
			return nil
		},
	}
}
