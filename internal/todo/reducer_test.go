package todo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		require.NoError(t, err)
	}
	return s
}

func TestAddTaskAssignsDistinctIDs(t *testing.T) {
	titles := []string{"one", "", "two", "   ", "three", "\t"}
	s := NewState(FilterAll)
	for _, title := range titles {
		s = apply(t, s, AddTask{Title: title})
	}

	require.Len(t, s.Tasks, 3)
	seen := map[int]bool{}
	for _, task := range s.Tasks {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
		assert.False(t, task.Done)
	}
	assert.Equal(t, []string{"one", "two", "three"}, titlesOf(s.Tasks))
}

func TestAddTaskTrimsTitle(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "  Buy milk \n"})
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "Buy milk", s.Tasks[0].Title)
}

func TestAddTaskBlankIsNoop(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "keep"})
	for _, title := range []string{"", "   ", "\t\n"} {
		next := apply(t, s, AddTask{Title: title})
		assert.Len(t, next.Tasks, 1)
		assert.Equal(t, s.NextID, next.NextID)
	}
}

func TestIDsNotReusedAfterClearAll(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"}, ClearAll{}, AddTask{Title: "c"})
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, 3, s.Tasks[0].ID)
}

func TestToggleDoneIsInvolution(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	id := s.Tasks[0].ID

	once := apply(t, s, ToggleDone{ID: id})
	assert.True(t, once.Tasks[0].Done)
	assert.False(t, once.Tasks[1].Done)

	twice := apply(t, once, ToggleDone{ID: id})
	assert.Equal(t, s.Tasks, twice.Tasks)
}

func TestToggleDoneIgnoredWhileEditing(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"})
	id := s.Tasks[0].ID
	s = apply(t, s, BeginEdit{ID: id}, ToggleDone{ID: id})
	assert.False(t, s.Tasks[0].Done)

	s = apply(t, s, CancelEdit{}, ToggleDone{ID: id})
	assert.True(t, s.Tasks[0].Done)
}

func TestToggleDoneUnknownID(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"})
	next := apply(t, s, ToggleDone{ID: 42})
	assert.Equal(t, s, next)
}

func TestUpdateTitleOnlyTouchesTitle(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	s = apply(t, s, ToggleDone{ID: s.Tasks[1].ID})
	s = apply(t, s, UpdateTitle{ID: s.Tasks[1].ID, Title: "renamed"})

	assert.Equal(t, Task{ID: 2, Title: "renamed", Done: true}, s.Tasks[1])
	assert.Equal(t, Task{ID: 1, Title: "a"}, s.Tasks[0])
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	id := s.Tasks[0].ID

	once := apply(t, s, DeleteTask{ID: id})
	twice := apply(t, once, DeleteTask{ID: id})
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"b"}, titlesOf(twice.Tasks))
}

func TestDeleteTaskClearsAnchorAndCursor(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	a, b := s.Tasks[0].ID, s.Tasks[1].ID

	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: a, Row: 0}})
	s = apply(t, s, DeleteTask{ID: b})
	require.NotNil(t, s.Anchor, "anchor on another task survives")

	s = apply(t, s, DeleteTask{ID: a})
	assert.Nil(t, s.Anchor)

	s = apply(t, s, AddTask{Title: "c"})
	c := s.Tasks[0].ID
	s = apply(t, s, BeginEdit{ID: c}, DeleteTask{ID: c})
	assert.Nil(t, s.Editing)
}

func TestClearAllEmptiesEverything(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	s = apply(t, s,
		ToggleDone{ID: s.Tasks[0].ID},
		SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: s.Tasks[1].ID}},
		BeginEdit{ID: s.Tasks[1].ID},
		ClearAll{},
	)
	assert.Empty(t, s.Tasks)
	assert.Nil(t, s.Editing)
	assert.Nil(t, s.Anchor)
	for _, f := range Filters {
		s = apply(t, s, SetFilter{Filter: f})
		assert.Empty(t, VisibleTasks(s), f.String())
	}
}

func TestEditScenario(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "X"})
	id := s.Tasks[0].ID

	s = apply(t, s, BeginEdit{ID: id})
	require.NotNil(t, s.Editing)
	assert.Equal(t, EditCursor{TaskID: id, Text: "X"}, *s.Editing)

	s = apply(t, s, EditText{Text: "Y"})
	assert.Equal(t, "X", s.Tasks[0].Title, "stored title waits for commit")

	s = apply(t, s, CommitEdit{})
	assert.Equal(t, "Y", s.Tasks[0].Title)
	assert.Nil(t, s.Editing)
}

func TestCommitEditAllowsBlankTitle(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "X"})
	s = apply(t, s, BeginEdit{ID: s.Tasks[0].ID}, EditText{Text: "  "}, CommitEdit{})
	assert.Equal(t, "  ", s.Tasks[0].Title)
}

func TestEditWithoutCursorIsNoop(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "X"})
	next := apply(t, s, EditText{Text: "Y"}, CommitEdit{})
	assert.Equal(t, s, next)
}

func TestBeginEditSupersedesAndClosesMenu(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	a, b := s.Tasks[0].ID, s.Tasks[1].ID

	s = apply(t, s, BeginEdit{ID: a}, EditText{Text: "draft"})
	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: b}}, BeginEdit{ID: b})
	require.NotNil(t, s.Editing)
	assert.Equal(t, EditCursor{TaskID: b, Text: "b"}, *s.Editing)
	assert.Nil(t, s.Anchor)
	assert.Equal(t, "a", s.Tasks[0].Title)

	next := apply(t, s, BeginEdit{ID: 99})
	assert.Equal(t, s, next)
}

func TestSelectionAnchorToggles(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"})
	a, b := s.Tasks[0].ID, s.Tasks[1].ID

	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: a, Row: 0}})
	require.NotNil(t, s.Anchor)
	assert.Equal(t, a, s.Anchor.TaskID)

	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: b, Row: 1}})
	require.NotNil(t, s.Anchor)
	assert.Equal(t, SelectionAnchor{TaskID: b, Row: 1}, *s.Anchor)

	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: b, Row: 7}})
	assert.Nil(t, s.Anchor, "second request for the same task closes the menu")

	s = apply(t, s, SetSelectionAnchor{Anchor: &SelectionAnchor{TaskID: a}}, SetSelectionAnchor{})
	assert.Nil(t, s.Anchor)
}

func TestSelectionAnchorIsCopied(t *testing.T) {
	anchor := &SelectionAnchor{TaskID: 1, Row: 2}
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"}, SetSelectionAnchor{Anchor: anchor})
	anchor.Row = 9
	assert.Equal(t, 2, s.Anchor.Row)
}

func TestSetFilterIgnoresInvalid(t *testing.T) {
	s := apply(t, NewState(FilterPending), SetFilter{Filter: Filter(7)})
	assert.Equal(t, FilterPending, s.Filter)
}

func TestReduceDoesNotMutatePriorSnapshot(t *testing.T) {
	base := apply(t, NewState(FilterAll), AddTask{Title: "a"}, AddTask{Title: "b"}, AddTask{Title: "c"})
	base = apply(t, base, BeginEdit{ID: 2})
	want := Task{ID: 1, Title: "a"}
	cursor := *base.Editing

	for _, a := range []Action{
		AddTask{Title: "d"},
		ToggleDone{ID: 1},
		UpdateTitle{ID: 1, Title: "z"},
		DeleteTask{ID: 1},
		EditText{Text: "changed"},
		CommitEdit{},
		ClearAll{},
	} {
		_, err := Reduce(base, a)
		require.NoError(t, err)
		assert.Len(t, base.Tasks, 3, a.Kind())
		assert.Equal(t, want, base.Tasks[0], a.Kind())
		assert.Equal(t, cursor, *base.Editing, a.Kind())
	}
}

type bogusAction struct{}

func (bogusAction) Kind() string { return "bogus" }

func TestReduceRejectsUnknownAction(t *testing.T) {
	s := apply(t, NewState(FilterAll), AddTask{Title: "a"})

	next, err := Reduce(s, bogusAction{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Contains(t, err.Error(), "bogus")
	assert.Equal(t, s, next)

	_, err = Reduce(s, nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func titlesOf(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}
