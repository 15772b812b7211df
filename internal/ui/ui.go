package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todocard/internal/config"
	"todocard/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeMenu
	modeEdit
	modeConfirmClear
)

type menuItem int

const (
	menuEdit menuItem = iota
	menuDelete
)

var menuItems = []string{"Edit", "Delete"}

type Model struct {
	store   *todo.Store
	keys    keyMap
	help    help.Model
	input   textinput.Model
	edit    textinput.Model
	cursor  int
	menuSel menuItem
	confirm bool
	adding  bool
	status  string
}

func New(store *todo.Store, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a New Task + Enter"
	ti.Prompt = "✎ "
	ti.CharLimit = 256
	ti.Width = titleWidth

	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 256
	ed.Width = titleWidth

	return Model{
		store:  store,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		edit:   ed,
		status: fmt.Sprintf("Press '%s' to add a task, '%s' for the item menu.", cfg.Keys.Add, cfg.Keys.Menu),
	}
}

func Run(store *todo.Store, cfg config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Info("card opened", "tasks", len(store.State().Tasks), "filter", store.State().Filter)
	program := tea.NewProgram(New(store, cfg), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		logger.Info("card closed", "tasks", len(m.store.State().Tasks))
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// mode derives the screen from the store first: an open edit cursor or
// popup wins over the local add/confirm flags.
func (m Model) mode() mode {
	s := m.store.State()
	switch {
	case s.Editing != nil:
		return modeEdit
	case m.confirm:
		return modeConfirmClear
	case s.Anchor != nil:
		return modeMenu
	case m.adding:
		return modeAdd
	default:
		return modeList
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode() {
		case modeEdit:
			return m.updateEditMode(msg)
		case modeConfirmClear:
			return m.updateClearConfirm(msg)
		case modeMenu:
			return m.updateMenuMode(msg)
		case modeAdd:
			return m.updateAddMode(msg)
		default:
			return m.updateListMode(msg)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) dispatch(a todo.Action) bool {
	if err := m.store.Dispatch(a); err != nil {
		m.status = fmt.Sprintf("%s failed: %v", a.Kind(), err)
		return false
	}
	m.cursor = clampCursor(m.cursor, len(m.store.Visible()))
	return true
}

func (m Model) selected() (todo.Task, bool) {
	visible := m.store.Visible()
	if len(visible) == 0 {
		return todo.Task{}, false
	}
	return visible[clampCursor(m.cursor, len(visible))], true
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.store.Visible()))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.store.Visible()))
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.status = "Add mode: type a title and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.dispatch(todo.ToggleDone{ID: t.ID}) {
			m.status = "Toggled task"
		}
	case key.Matches(msg, m.keys.Menu):
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		m.menuSel = menuEdit
		m.dispatch(todo.SetSelectionAnchor{Anchor: &todo.SelectionAnchor{TaskID: t.ID, Row: m.cursor}})
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(t)
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.dispatch(todo.DeleteTask{ID: t.ID}) {
			m.status = "Deleted task"
		}
	case key.Matches(msg, m.keys.ClearAll):
		if len(m.store.State().Tasks) == 0 {
			m.status = "Nothing to clear"
			return m, nil
		}
		m.confirm = true
		m.status = "Clear all tasks? y/n"
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.store.State().Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterPend):
		m.setFilter(todo.FilterPending)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(todo.FilterCompleted)
	}
	return m, nil
}

func (m *Model) setFilter(f todo.Filter) {
	if m.dispatch(todo.SetFilter{Filter: f}) {
		m.status = "Showing " + f.Label()
	}
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		before := len(m.store.State().Tasks)
		if !m.dispatch(todo.AddTask{Title: m.input.Value()}) {
			return m, nil
		}
		if len(m.store.State().Tasks) == before {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.input.SetValue("")
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateMenuMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	anchor := m.store.State().Anchor
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.menuSel = menuItem(clampCursor(int(m.menuSel)+1, len(menuItems)))
	case key.Matches(msg, m.keys.Up):
		m.menuSel = menuItem(clampCursor(int(m.menuSel)-1, len(menuItems)))
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Menu):
		// Requesting the open anchor again closes it.
		m.dispatch(todo.SetSelectionAnchor{Anchor: anchor})
	case key.Matches(msg, m.keys.Edit):
		return m.chooseMenu(menuEdit, anchor.TaskID)
	case key.Matches(msg, m.keys.Delete):
		return m.chooseMenu(menuDelete, anchor.TaskID)
	case key.Matches(msg, m.keys.Confirm):
		return m.chooseMenu(m.menuSel, anchor.TaskID)
	}
	return m, nil
}

func (m Model) chooseMenu(item menuItem, id int) (tea.Model, tea.Cmd) {
	t, ok := m.store.State().Find(id)
	if !ok {
		m.dispatch(todo.SetSelectionAnchor{})
		return m, nil
	}
	if item == menuEdit {
		return m.startEdit(t)
	}
	if m.dispatch(todo.DeleteTask{ID: t.ID}) {
		m.status = "Deleted task"
	}
	return m, nil
}

func (m Model) startEdit(t todo.Task) (tea.Model, tea.Cmd) {
	if !m.dispatch(todo.BeginEdit{ID: t.ID}) {
		return m, nil
	}
	m.edit.SetValue(m.store.State().Editing.Text)
	m.edit.CursorEnd()
	m.status = "Editing: Enter to save, Esc to cancel"
	cmd := m.edit.Focus()
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.dispatch(todo.CancelEdit{})
		m.edit.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.dispatch(todo.CommitEdit{}) {
			m.status = "Saved"
		}
		m.edit.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		before := m.edit.Value()
		m.edit, cmd = m.edit.Update(msg)
		if v := m.edit.Value(); v != before {
			m.dispatch(todo.EditText{Text: v})
		}
		return m, cmd
	}
}

func (m Model) updateClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirm = false
		if m.dispatch(todo.ClearAll{}) {
			m.cursor = 0
			m.status = "Cleared all tasks"
		}
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Cancel):
		m.confirm = false
		m.status = "Clear cancelled"
	}
	return m, nil
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
