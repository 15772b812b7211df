package todo

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

// Reduce returns the snapshot that follows s once a is applied. Every known
// action is total: a failed precondition leaves the state as it was. The
// only error is an action type Reduce does not recognise.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case AddTask:
		return addTask(s, a.Title), nil
	case ToggleDone:
		return toggleDone(s, a.ID), nil
	case UpdateTitle:
		return updateTitle(s, a.ID, a.Title), nil
	case DeleteTask:
		return deleteTask(s, a.ID), nil
	case ClearAll:
		s.Tasks = nil
		s.Editing = nil
		s.Anchor = nil
		return s, nil
	case SetFilter:
		if a.Filter.Valid() {
			s.Filter = a.Filter
		}
		return s, nil
	case BeginEdit:
		return beginEdit(s, a.ID), nil
	case EditText:
		if s.Editing != nil {
			s.Editing = &EditCursor{TaskID: s.Editing.TaskID, Text: a.Text}
		}
		return s, nil
	case CommitEdit:
		return commitEdit(s), nil
	case CancelEdit:
		s.Editing = nil
		return s, nil
	case SetSelectionAnchor:
		return setAnchor(s, a.Anchor), nil
	case nil:
		return s, fmt.Errorf("%w: nil", ErrUnknownAction)
	default:
		return s, fmt.Errorf("%w: %s (%T)", ErrUnknownAction, a.Kind(), a)
	}
}

func addTask(s State, title string) State {
	title = strings.TrimSpace(title)
	if title == "" {
		return s
	}
	if s.NextID < 1 {
		s.NextID = 1
	}
	tasks := make([]Task, len(s.Tasks), len(s.Tasks)+1)
	copy(tasks, s.Tasks)
	s.Tasks = append(tasks, Task{ID: s.NextID, Title: title})
	s.NextID++
	return s
}

func toggleDone(s State, id int) State {
	i := s.index(id)
	if i < 0 || s.IsEditing(id) {
		return s
	}
	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i].Done = !s.Tasks[i].Done
	return s
}

// updateTitle does not validate the title; an edit may empty it.
func updateTitle(s State, id int, title string) State {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i].Title = title
	return s
}

func deleteTask(s State, id int) State {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)
	if s.MenuOpen(id) {
		s.Anchor = nil
	}
	if s.IsEditing(id) {
		s.Editing = nil
	}
	return s
}

func beginEdit(s State, id int) State {
	t, ok := s.Find(id)
	if !ok {
		return s
	}
	s.Editing = &EditCursor{TaskID: t.ID, Text: t.Title}
	s.Anchor = nil
	return s
}

func commitEdit(s State) State {
	if s.Editing == nil {
		return s
	}
	s = updateTitle(s, s.Editing.TaskID, s.Editing.Text)
	s.Editing = nil
	return s
}

func setAnchor(s State, anchor *SelectionAnchor) State {
	if anchor == nil || (s.Anchor != nil && s.Anchor.TaskID == anchor.TaskID) {
		s.Anchor = nil
		return s
	}
	next := *anchor
	s.Anchor = &next
	return s
}
