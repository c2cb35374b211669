package selection

import (
	"launchdeck/internal/core/launch"
	perr "launchdeck/internal/platform/errors"
)

// Snapshot is the derived view after a transition; the presentation layer is a pure function of it
type Snapshot struct {
	Filter        FilterState
	View          []launch.Launch
	Selection     *launch.Launch
	InView        bool
	GridMinimized bool
}

// Machine holds the full launch set, the filter state and the current selection
// it is not safe for concurrent use; callers serialise transitions
type Machine struct {
	all    []launch.Launch
	index  map[string]int
	filter FilterState
	view   []launch.Launch
	sel    string
	grid   bool
}

// New builds a machine over launches with no year filter, outcome all and
// the most recent launch selected
func New(launches []launch.Launch) *Machine {
	all := launch.SortDesc(launches)
	idx := make(map[string]int, len(all))
	for i, l := range all {
		if _, dup := idx[l.ID]; !dup {
			idx[l.ID] = i
		}
	}
	m := &Machine{all: all, index: idx, filter: FilterState{Outcome: OutcomeAll}}
	m.recompute()
	return m
}

// SetYear sets or clears (nil) the year filter
func (m *Machine) SetYear(y *int) Snapshot {
	m.filter.Year = copyYear(y)
	m.recompute()
	return m.Snapshot()
}

// SetOutcome sets the outcome filter
func (m *Machine) SetOutcome(o Outcome) Snapshot {
	if o == "" {
		o = OutcomeAll
	}
	m.filter.Outcome = o
	m.recompute()
	return m.Snapshot()
}

// Apply replaces the whole filter state in one transition
func (m *Machine) Apply(f FilterState) Snapshot {
	if f.Outcome == "" {
		f.Outcome = OutcomeAll
	}
	f.Year = copyYear(f.Year)
	m.filter = f
	m.recompute()
	return m.Snapshot()
}

// Select points the selection at launch id without touching the filter state
func (m *Machine) Select(id string) (Snapshot, error) {
	if _, ok := m.index[id]; !ok {
		return m.Snapshot(), perr.NotFoundf("launch %s not found", id)
	}
	m.sel = id
	return m.Snapshot(), nil
}

// SetGridMinimized toggles the grid display mode
func (m *Machine) SetGridMinimized(v bool) Snapshot {
	m.grid = v
	return m.Snapshot()
}

// Filter returns a copy of the current filter state
func (m *Machine) Filter() FilterState { return m.filter.clone() }

// Launches returns every launch, newest first
func (m *Machine) Launches() []launch.Launch { return m.all }

// Snapshot returns the current derived state
func (m *Machine) Snapshot() Snapshot {
	view := make([]launch.Launch, len(m.view))
	copy(view, m.view)
	s := Snapshot{Filter: m.filter.clone(), View: view, GridMinimized: m.grid}
	if i, ok := m.index[m.sel]; ok {
		l := m.all[i]
		s.Selection = &l
		s.InView = m.inView(m.sel)
	}
	return s
}

// recompute rebuilds the view and re-evaluates the selection invariant:
// keep the selection while it is in the view, otherwise reset to the newest entry;
// an empty view leaves the selection untouched
func (m *Machine) recompute() {
	m.view = Apply(m.all, m.filter)
	if len(m.view) == 0 {
		return
	}
	if m.sel != "" && m.inView(m.sel) {
		return
	}
	m.sel = m.view[0].ID
}

func (m *Machine) inView(id string) bool {
	for _, l := range m.view {
		if l.ID == id {
			return true
		}
	}
	return false
}
