package todo

const (
	KindAddTask            = "add_task"
	KindToggleDone         = "toggle_done"
	KindUpdateTitle        = "update_title"
	KindDeleteTask         = "delete_task"
	KindClearAll           = "clear_all"
	KindSetFilter          = "set_filter"
	KindBeginEdit          = "begin_edit"
	KindEditText           = "edit_text"
	KindCommitEdit         = "commit_edit"
	KindCancelEdit         = "cancel_edit"
	KindSetSelectionAnchor = "set_selection_anchor"
)

// Action is a request to change the state. Kind is used for logging; the
// reducer dispatches on the concrete type.
type Action interface {
	Kind() string
}

type AddTask struct{ Title string }

type ToggleDone struct{ ID int }

type UpdateTitle struct {
	ID    int
	Title string
}

type DeleteTask struct{ ID int }

type ClearAll struct{}

type SetFilter struct{ Filter Filter }

type BeginEdit struct{ ID int }

// EditText replaces the working text of the open edit cursor.
type EditText struct{ Text string }

type CommitEdit struct{}

type CancelEdit struct{}

// SetSelectionAnchor opens the popup for Anchor.TaskID, or closes it when
// Anchor is nil or names the task whose popup is already open.
type SetSelectionAnchor struct{ Anchor *SelectionAnchor }

func (AddTask) Kind() string            { return KindAddTask }
func (ToggleDone) Kind() string         { return KindToggleDone }
func (UpdateTitle) Kind() string        { return KindUpdateTitle }
func (DeleteTask) Kind() string         { return KindDeleteTask }
func (ClearAll) Kind() string           { return KindClearAll }
func (SetFilter) Kind() string          { return KindSetFilter }
func (BeginEdit) Kind() string          { return KindBeginEdit }
func (EditText) Kind() string           { return KindEditText }
func (CommitEdit) Kind() string         { return KindCommitEdit }
func (CancelEdit) Kind() string         { return KindCancelEdit }
func (SetSelectionAnchor) Kind() string { return KindSetSelectionAnchor }
