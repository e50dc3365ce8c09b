package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/wire"
)

// PassphraseCmd returns the passphrase command
func PassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Manage the edit-mode passphrase",
		Long: `Manage the passphrase gating edit mode. This is a soft deterrent
against accidental edits, not a security boundary: it is stored and
compared in plain text.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [value]",
		Short: "Change the passphrase (minimum 4 characters)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PassphraseService().Change(context.Background(), args[0]); err != nil {
				return err
			}
			green.Println("✓ Passphrase updated")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify [value]",
		Short: "Check a passphrase against the stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire.PassphraseService().Verify(context.Background(), args[0]) {
				green.Println("✓ Passphrase matches")
				return nil
			}
			return fmt.Errorf("passphrase does not match")
		},
	})

	return cmd
}
