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

// Menu actions for the edit session. Item indices are >= 0, so
// negative values are free for session actions.
const (
	actionStats = -2
	actionAudit = -3
	actionDone  = -4
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Enter edit mode to correct locked items (passphrase required)",
		Long: `Start an interactive edit-mode session. Edit mode relaxes lock
enforcement: any item can be toggled directly, without confirmation.
The mode lasts for this session only and is never persisted.

The 's' and 'l' menu entries are read-only inspection aids showing
statistics and the audit log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.RoadmapService()

			if !promptPassphrase(ctx) {
				fmt.Println("Edit mode not entered.")
				return nil
			}

			yellow.Println("🔓 Edit mode ENABLED - locked items are now editable")
			fmt.Println()

			if err := runEditSession(ctx); err != nil {
				// Disable before surfacing the error so the session
				// never leaks an enabled mode.
				if disableErr := svc.DisableEditMode(ctx); disableErr != nil {
					fmt.Println(disableErr)
				}
				return err
			}

			if err := svc.DisableEditMode(ctx); err != nil {
				return err
			}
			yellow.Println("🔒 Edit mode DISABLED - locks re-applied")
			return nil
		},
	}
}

// promptPassphrase asks for the passphrase until it verifies or the
// user aborts. Attempts are unlimited; a wrong entry shows a transient
// error and re-prompts.
func promptPassphrase(ctx context.Context) bool {
	svc := wire.RoadmapService()

	for {
		var passphrase string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Edit mode passphrase").
				Description(`First time? The default passphrase is "admin123".`).
				EchoMode(huh.EchoModePassword).
				Value(&passphrase),
		))

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false
			}
			fmt.Println(err)
			return false
		}

		err := svc.EnableEditMode(ctx, passphrase)
		if err == nil {
			return true
		}
		if errors.Is(err, primary.ErrWrongPassphrase) {
			red.Println("❌ Incorrect passphrase. Try again.")
			continue
		}
		fmt.Println(err)
		return false
	}
}

func runEditSession(ctx context.Context) error {
	svc := wire.RoadmapService()

	for {
		items := svc.Items(ctx)
		options := make([]huh.Option[int], 0, len(items)+3)
		for _, it := range items {
			options = append(options, huh.NewOption(itemLine(it), it.Index))
		}
		options = append(options,
			huh.NewOption("View statistics (s)", actionStats),
			huh.NewOption("View audit log (l)", actionAudit),
			huh.NewOption("Done - exit edit mode", actionDone),
		)

		var choice int
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title("Toggle an item, or pick an action").
				Options(options...).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case actionDone:
			return nil
		case actionStats:
			printStats(svc.Statistics(ctx))
			fmt.Println()
		case actionAudit:
			printAuditLog(wire.AuditService().List(ctx))
			fmt.Println()
		default:
			current, err := svc.Item(ctx, choice)
			if err != nil {
				return err
			}

			result, err := svc.RequestTransition(ctx, choice, !current.Checked)
			if err != nil {
				return fmt.Errorf("failed to toggle item %d: %w", choice, err)
			}
			if result.Status == primary.StatusRejected {
				red.Println(result.Reason)
				continue
			}
			if result.Item.Checked {
				green.Printf("✓ Locked: %s\n", result.Label)
			} else {
				fmt.Printf("Unlocked: %s\n", result.Label)
			}
			printProgressAfterTransition(ctx)
			fmt.Println()
		}
	}
}
