package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"todocard/internal/todo"
)

const (
	// room for a truncated title and its ellipsis
	titleWidth = todo.TitleLimit + 3
	cardWidth  = titleWidth + 16

	emptyMessage = "You don't have any task here"
	menuGlyph    = "⋯"
)

var (
	colorAccent = lipgloss.Color("9")
	colorMuted  = lipgloss.Color("241")
	colorRule   = lipgloss.Color("248")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRule).
			Padding(1, 2).
			Width(cardWidth)
	tabStyle       = lipgloss.NewStyle().MarginRight(2)
	activeTabStyle = tabStyle.Foreground(colorAccent).Bold(true)
	clearStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ruleStyle      = lipgloss.NewStyle().Foreground(colorRule)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	popupStyle     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	popupSelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

func (m Model) View() string {
	s := m.store.State()

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderToolbar(s))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", cardWidth-4)))
	b.WriteString("\n")
	b.WriteString(m.renderTaskList(s))

	var out strings.Builder
	out.WriteString(cardStyle.Render(b.String()))
	out.WriteString("\n")
	out.WriteString(m.renderFooter(s))
	out.WriteString("\n")
	out.WriteString(m.status)
	out.WriteString("\n")
	out.WriteString(m.help.View(m.keys))
	return out.String()
}

func (m Model) renderToolbar(s todo.State) string {
	var tabs []string
	for _, f := range todo.Filters {
		style := tabStyle
		if f == s.Filter {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	right := clearStyle.Render(fmt.Sprintf("Clear All [%s]", m.keys.ClearAll.Help().Key))
	gap := cardWidth - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderTaskList(s todo.State) string {
	visible := todo.VisibleTasks(s)
	if len(visible) == 0 {
		return mutedStyle.Render(emptyMessage)
	}

	cur := m.mode()
	var rows []string
	for i, t := range visible {
		rows = append(rows, m.renderRow(s, i, t, cur))
		if s.MenuOpen(t.ID) {
			rows = append(rows, m.renderPopup())
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(s todo.State, i int, t todo.Task, cur mode) string {
	cursor := " "
	if i == m.cursor && cur != modeAdd {
		cursor = ">"
	}

	checkbox := "[ ]"
	if t.Done {
		checkbox = "[x]"
	}

	var title string
	if s.IsEditing(t.ID) {
		// toggling is off while the title is being edited
		checkbox = mutedStyle.Render(checkbox)
		title = m.edit.View()
	} else {
		text := todo.DisplayTitle(t.Title)
		pad := titleWidth - runewidth.StringWidth(text)
		if pad < 0 {
			pad = 0
		}
		if t.Done {
			text = doneStyle.Render(text)
		}
		title = text + strings.Repeat(" ", pad)
	}

	return fmt.Sprintf("%s %s %s %s", cursor, checkbox, title, mutedStyle.Render(menuGlyph))
}

// renderPopup draws the item menu hanging off the right edge of the
// anchored row.
func (m Model) renderPopup() string {
	var lines []string
	for i, label := range menuItems {
		if menuItem(i) == m.menuSel {
			lines = append(lines, popupSelStyle.Render("› "+label))
			continue
		}
		lines = append(lines, "  "+label)
	}
	popup := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(cardWidth-4, lipgloss.Right, popup)
}

func (m Model) renderFooter(s todo.State) string {
	pending, completed := todo.Counts(s.Tasks)
	return mutedStyle.Render(fmt.Sprintf("%d pending • %d completed", pending, completed))
}
