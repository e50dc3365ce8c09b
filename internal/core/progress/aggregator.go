// Package progress contains the pure aggregation logic deriving
// completion percentages from current item states. This is part of the
// functional core - no I/O, only pure functions of the item slice.
package progress

import (
	"math"

	"github.com/example/waymark/internal/models"
)

// Overall returns the overall completion percentage, an integer in
// [0,100]. Returns 0 for an empty roadmap.
func Overall(items []models.Item) int {
	return percentage(countChecked(items), len(items))
}

// ByPhase returns the completion percentage per phase id, computed the
// same way as Overall but scoped to items sharing the phase.
func ByPhase(items []models.Item) map[string]int {
	totals := make(map[string]int)
	checked := make(map[string]int)
	for _, it := range items {
		totals[it.Phase]++
		if it.Checked {
			checked[it.Phase]++
		}
	}

	result := make(map[string]int, len(totals))
	for phase, total := range totals {
		result[phase] = percentage(checked[phase], total)
	}
	return result
}

// Complete reports whether the roadmap is fully complete. This gates
// the certificate affordance; the aggregator only exposes the signal.
func Complete(items []models.Item) bool {
	return len(items) > 0 && Overall(items) == 100
}

// Collect builds the operator statistics snapshot from the current
// item states.
func Collect(items []models.Item) models.Statistics {
	checked := countChecked(items)
	locked := 0
	for _, it := range items {
		if it.Locked {
			locked++
		}
	}

	return models.Statistics{
		Total:      len(items),
		Completed:  checked,
		Locked:     locked,
		Remaining:  len(items) - checked,
		Percentage: percentage(checked, len(items)),
	}
}

func countChecked(items []models.Item) int {
	n := 0
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

// percentage rounds half away from zero, matching math.Round.
func percentage(checked, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(checked) / float64(total) * 100))
}
