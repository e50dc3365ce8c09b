// Package cli contains the cobra commands for waymark.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/waymark/internal/models"
	"github.com/example/waymark/internal/wire"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	faint  = color.New(color.Faint)
)

// parseIndex converts a positional argument to an item index.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid item index %q: expected a number", arg)
	}
	return index, nil
}

// itemLine formats one item for listings: index, checkbox, label, lock
// marker.
func itemLine(it models.Item) string {
	box := "[ ]"
	if it.Checked {
		box = green.Sprint("[x]")
	}

	line := fmt.Sprintf("  %s %s %s", faint.Sprintf("%3d", it.Index), box, it.Label)
	if it.Locked {
		line += yellow.Sprint("  🔒")
	}
	return line
}

// renderBar draws a fixed-width progress bar like [####----] 50%.
func renderBar(percentage int) string {
	const width = 10
	filled := percentage * width / 100
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		percentage,
	)
}

// printStats renders the statistics snapshot.
func printStats(stats models.Statistics) {
	fmt.Println("Progress Statistics")
	fmt.Println()
	fmt.Printf("  Completed: %d/%d\n", stats.Completed, stats.Total)
	fmt.Printf("  Locked:    %d\n", stats.Locked)
	fmt.Printf("  Remaining: %d\n", stats.Remaining)
	fmt.Printf("  Progress:  %s\n", renderBar(stats.Percentage))
}

// printAuditLog renders the ordered audit sequence.
func printAuditLog(logs []models.AuditEntry) {
	if len(logs) == 0 {
		fmt.Println("Audit log is empty")
		return
	}

	fmt.Printf("Audit Log (%d entries):\n\n", len(logs))
	for i, entry := range logs {
		mode := ""
		if entry.EditMode {
			mode = yellow.Sprint(" [edit mode]")
		}
		fmt.Printf("  %3d  %s  %-19s %s%s\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Action,
			entry.Label,
			mode,
		)
	}
}

// printProgressAfterTransition shows the recomputed overall progress.
func printProgressAfterTransition(ctx context.Context) {
	stats := wire.RoadmapService().Statistics(ctx)
	fmt.Printf("Overall progress: %s\n", renderBar(stats.Percentage))
}
