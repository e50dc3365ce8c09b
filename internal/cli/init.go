package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/waymark/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default roadmap definition to ~/.waymark/roadmap.yaml for customization",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.OverridePath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("roadmap override already exists at %s", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create .waymark directory: %w", err)
			}
			if err := os.WriteFile(path, config.DefaultYAML(), 0644); err != nil {
				return fmt.Errorf("failed to write roadmap override: %w", err)
			}

			green.Printf("✓ Wrote %s\n", path)
			fmt.Println("Edit it to customize your roadmap. Item state is keyed by position,")
			fmt.Println("so reordering items remaps any saved progress.")
			return nil
		},
	}
}
