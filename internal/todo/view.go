package todo

// TitleLimit is the number of characters shown before a title is cut.
const TitleLimit = 25

const ellipsis = "..."

// VisibleTasks applies the active filter. The result is a fresh slice in
// list order; callers may modify it without touching the snapshot.
func VisibleTasks(s State) []Task {
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if s.Filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Done
	case FilterCompleted:
		return t.Done
	default:
		return true
	}
}

// DisplayTitle shortens titles longer than TitleLimit runes for the list
// row. Stored titles are never cut.
func DisplayTitle(title string) string {
	r := []rune(title)
	if len(r) <= TitleLimit {
		return title
	}
	return string(r[:TitleLimit]) + ellipsis
}

func Counts(tasks []Task) (pending, completed int) {
	for _, t := range tasks {
		if t.Done {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
