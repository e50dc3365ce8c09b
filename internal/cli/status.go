package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the roadmap with per-phase progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roadmap := wire.Roadmap()
			svc := wire.RoadmapService()

			items := svc.Items(ctx)
			phaseProgress := svc.PhaseProgress(ctx)

			fmt.Println(roadmap.Title)
			fmt.Println()

			for _, phase := range roadmap.Phases {
				fmt.Printf("%s  %s\n", renderBar(phaseProgress[phase.ID]), phase.Name)
				for _, it := range items {
					if it.Phase == phase.ID {
						fmt.Println(itemLine(it))
					}
				}
				fmt.Println()
			}

			stats := svc.Statistics(ctx)
			fmt.Printf("Overall: %s\n", renderBar(stats.Percentage))
			if svc.Complete(ctx) {
				green.Println("Roadmap complete! Run `waymark certificate` to claim your certificate.")
			}
			return nil
		},
	}
}
