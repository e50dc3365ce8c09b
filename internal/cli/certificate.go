package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// CertificateCmd returns the certificate command. The completion gate
// comes from the aggregator; this command only renders the outcome.
func CertificateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "certificate",
		Short: "Claim your completion certificate (requires 100%)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.RoadmapService()

			if !svc.Complete(ctx) {
				stats := svc.Statistics(ctx)
				red.Println("🚫 Certificate locked!")
				fmt.Printf("You have completed %d%% of the roadmap.\n", stats.Percentage)
				fmt.Println("Complete ALL topics (100%) to claim your certificate. Keep going!")
				return nil
			}

			title := wire.Roadmap().Title
			green.Println("🎉 Congratulations!")
			fmt.Printf("You have completed the %s.\n", title)
			fmt.Println("This certifies that every topic was finished and locked in.")
			return nil
		},
	}
}
