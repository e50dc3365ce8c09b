package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/cli"
	"github.com/example/waymark/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "waymark",
		Short:   "waymark - progress tracker for a learning roadmap",
		Version: version.String(),
		Long: `waymark tracks your progress through a checklist-style learning roadmap.
Completing an item locks it; corrections require edit mode, which is
gated by a passphrase. Every lock, unlock, and mode change is recorded
in an audit trail.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.UncheckCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.AuditCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.PassphraseCmd())
	rootCmd.AddCommand(cli.ResetCmd())
	rootCmd.AddCommand(cli.CertificateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
