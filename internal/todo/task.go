// Package todo holds the to-do card state and the transition function that
// produces a new snapshot for every dispatched action.
package todo

import (
	"fmt"
	"strings"
)

type Task struct {
	ID    int
	Title string
	Done  bool
}

type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

// Filters lists the modes in the order the card shows them.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterPending:
		return "pending"
	case FilterCompleted:
		return "completed"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// Label is the tab caption.
func (f Filter) Label() string {
	switch f {
	case FilterPending:
		return "Pending"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

func (f Filter) Valid() bool {
	return f >= FilterAll && f <= FilterCompleted
}

func ParseFilter(v string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all":
		return FilterAll, nil
	case "pending":
		return FilterPending, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q (want all, pending or completed)", v)
	}
}

// EditCursor is the working copy of a title while it is being edited.
type EditCursor struct {
	TaskID int
	Text   string
}

// SelectionAnchor marks the task whose popup menu is open. Row is the
// rendered row the popup hangs off; only TaskID takes part in comparisons.
type SelectionAnchor struct {
	TaskID int
	Row    int
}

// State is one immutable snapshot. Reduce never writes into a State it was
// given, so callers may keep old snapshots around.
type State struct {
	Tasks   []Task
	Filter  Filter
	Editing *EditCursor
	Anchor  *SelectionAnchor
	NextID  int
}

func NewState(filter Filter) State {
	return State{Filter: filter, NextID: 1}
}

func (s State) Find(id int) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

func (s State) IsEditing(id int) bool {
	return s.Editing != nil && s.Editing.TaskID == id
}

func (s State) MenuOpen(id int) bool {
	return s.Anchor != nil && s.Anchor.TaskID == id
}

func (s State) index(id int) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
