package todo

import (
	"io"

	"github.com/charmbracelet/log"
)

// Store owns the current snapshot and is its only writer. It is not safe
// for concurrent use; the UI loop dispatches one action at a time.
type Store struct {
	state  State
	logger *log.Logger
}

func NewStore(initial State, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if initial.NextID < 1 {
		initial.NextID = 1
	}
	return &Store{state: initial, logger: logger}
}

// Dispatch reduces the current snapshot with a. On error the snapshot is
// left in place and the error is returned to the caller.
func (s *Store) Dispatch(a Action) error {
	next, err := Reduce(s.state, a)
	if err != nil {
		s.logger.Error("dispatch rejected", "err", err)
		return err
	}
	s.state = next
	s.logger.Debug("dispatch", "action", a.Kind(), "tasks", len(next.Tasks), "filter", next.Filter)
	return nil
}

func (s *Store) State() State {
	return s.state
}

func (s *Store) Visible() []Task {
	return VisibleTasks(s.state)
}
