package selection

import (
	"sync"

	"github.com/ternarybob/arbor"
)

// Manager owns the single SelectionState instance and serializes event
// application. Commands produced by a transition are handed to the
// dispatch callback after the state swap; state listeners run after that.
type Manager struct {
	mu       sync.RWMutex
	state    State
	rules    Rules
	logger   arbor.ILogger
	dispatch func(Command)
	onChange func(State)
}

// NewManager creates a selection manager with the configured rules.
// dispatch and onChange may be nil.
func NewManager(rules Rules, logger arbor.ILogger, dispatch func(Command), onChange func(State)) *Manager {
	return &Manager{
		state:    NewState(),
		rules:    rules,
		logger:   logger,
		dispatch: dispatch,
		onChange: onChange,
	}
}

// State returns the current selection snapshot.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Apply runs one event through the reducer and executes its commands.
func (m *Manager) Apply(ev Event) State {
	m.mu.Lock()
	next, commands := Reduce(m.rules, m.state, ev)
	m.state = next
	m.mu.Unlock()

	m.logger.Debug().
		Str("phase", string(next.Phase)).
		Bool("sheet_open", next.SheetOpen).
		Bool("scout_modal_open", next.ScoutModalOpen).
		Msg("Selection state updated")

	if m.dispatch != nil {
		for _, cmd := range commands {
			m.dispatch(cmd)
		}
	}
	if m.onChange != nil {
		m.onChange(next)
	}

	return next
}
