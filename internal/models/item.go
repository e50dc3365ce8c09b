// Package models contains domain types for waymark entities.
// Persistence lives behind the repository interfaces in ports/secondary.
package models

// Item represents one checklist entry in the roadmap.
// Identity is the stable index within the roadmap definition.
type Item struct {
	Index   int
	Label   string
	Phase   string
	Checked bool
	Locked  bool
}

// Interactive reports whether the item accepts direct toggles in the
// given mode. A locked item is only interactive in edit mode; the lock
// flag wins even if the persisted checked flag disagrees with it.
func (i Item) Interactive(editMode bool) bool {
	if editMode {
		return true
	}
	return !i.Locked
}

// ItemDefinition is the static part of an item, established by the
// roadmap definition at load time.
type ItemDefinition struct {
	Index int
	Label string
	Phase string
}
