package events

// SelectionChange describes one change to a child's selection. Reset is set
// when the whole selection was cleared; otherwise ActivityID was added
// (Added) or removed.
type SelectionChange struct {
	ChildID    string
	Campus     string
	ActivityID string
	Added      bool
	Reset      bool
}

// OnSelectionChanged is called after a selection change is committed.
// services will call this if it's set.
var OnSelectionChanged func(change SelectionChange)
