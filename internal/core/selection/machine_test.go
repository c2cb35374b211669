package selection

import (
	"math/rand"
	"testing"

	"launchdeck/internal/core/launch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []launch.Launch {
	return []launch.Launch{
		mk("fs1", "2006-03-24T22:30:00Z", launch.Bool(false)),
		mk("demo2", "2020-05-30T19:22:00Z", launch.Bool(true), "c1", "c2"),
		mk("crew1", "2020-11-16T00:27:00Z", launch.Bool(true), "c3", "c4", "c5", "c6"),
		mk("sl", "2020-03-18T12:16:00Z", launch.Bool(false)),
		mk("crew2", "2021-04-23T09:49:00Z", launch.Bool(true), "c7"),
		mk("inspiration4", "2021-09-16T00:02:00Z", nil, "c8"),
		mk("starlink", "2021-12-02T23:12:00Z", launch.Bool(true)),
		mk("tbd", "", nil),
	}
}

func ids(ls []launch.Launch) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func assertDesc(t *testing.T, view []launch.Launch) {
	t.Helper()
	for i := 1; i < len(view); i++ {
		assert.False(t, launch.Newer(view[i], view[i-1]), "view out of order at %d: %v", i, ids(view))
	}
}

func TestMachine_NewSelectsNewest(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	s := m.Snapshot()

	assert.Nil(t, s.Filter.Year)
	assert.Equal(t, OutcomeAll, s.Filter.Outcome)
	assert.Len(t, s.View, 8)
	require.NotNil(t, s.Selection)
	assert.Equal(t, "starlink", s.Selection.ID)
	assert.True(t, s.InView)
	assert.Equal(t, "tbd", s.View[len(s.View)-1].ID)
}

func TestMachine_NewEmpty(t *testing.T) {
	t.Parallel()

	s := New(nil).Snapshot()
	assert.Empty(t, s.View)
	assert.Nil(t, s.Selection)
	assert.False(t, s.InView)
}

func TestMachine_YearAndCrewedExample(t *testing.T) {
	t.Parallel()

	m := New([]launch.Launch{
		mk("a", "2020-05-30T00:00:00Z", launch.Bool(true)),
		mk("b", "2021-04-23T00:00:00Z", launch.Bool(false), "c1"),
	})

	s := m.SetYear(year(2021))
	assert.Equal(t, []string{"b"}, ids(s.View))

	m.SetYear(nil)
	s = m.SetOutcome(OutcomeCrewed)
	assert.Equal(t, []string{"b"}, ids(s.View))
}

func TestMachine_SelectionKeptWhileInView(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	_, err := m.Select("demo2")
	require.NoError(t, err)

	s := m.SetYear(year(2020))
	assert.Equal(t, "demo2", s.Selection.ID)

	s = m.SetOutcome(OutcomeCrewed)
	assert.Equal(t, []string{"crew1", "demo2"}, ids(s.View))
	assert.Equal(t, "demo2", s.Selection.ID)
}

func TestMachine_SelectionResetsToNewestInView(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	s := m.SetYear(year(2020))
	assert.Equal(t, "crew1", s.Selection.ID)

	s = m.SetYear(year(2006))
	assert.Equal(t, "fs1", s.Selection.ID)
}

func TestMachine_EmptyViewKeepsSelection(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	_, err := m.Select("sl")
	require.NoError(t, err)

	s := m.Apply(FilterState{Year: year(2006), Outcome: OutcomeCrewed})
	assert.Empty(t, s.View)
	require.NotNil(t, s.Selection)
	assert.Equal(t, "sl", s.Selection.ID)
	assert.False(t, s.InView)
}

func TestMachine_SelectOutsideView(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	m.SetYear(year(2021))

	s, err := m.Select("fs1")
	require.NoError(t, err)
	assert.Equal(t, "fs1", s.Selection.ID)
	assert.False(t, s.InView)
	assert.Equal(t, []string{"starlink", "inspiration4", "crew2"}, ids(s.View))

	_, err = m.Select("nope")
	require.Error(t, err)
	assert.Equal(t, "fs1", m.Snapshot().Selection.ID)
}

func TestMachine_GridToggleLeavesFilter(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	m.SetOutcome(OutcomeSuccess)
	s := m.SetGridMinimized(true)
	assert.True(t, s.GridMinimized)
	assert.Equal(t, OutcomeSuccess, s.Filter.Outcome)
	assert.Equal(t, OutcomeSuccess, m.Filter().Outcome)
}

func TestMachine_ViewSortedForEveryFilter(t *testing.T) {
	t.Parallel()

	years := []*int{nil, year(2006), year(2020), year(2021), year(1999)}
	for _, y := range years {
		for _, o := range Outcomes {
			m := New(fixture())
			s := m.Apply(FilterState{Year: y, Outcome: o})
			assertDesc(t, s.View)
			for _, l := range s.View {
				assert.True(t, s.Filter.Matches(l))
				if o == OutcomeCrewed {
					assert.NotEmpty(t, l.Crew)
				}
			}
		}
	}
}

func TestMachine_SelectionInvariantRandomWalk(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	years := []*int{nil, year(2006), year(2020), year(2021), year(1999)}
	m := New(fixture())
	all := m.Launches()

	for i := 0; i < 500; i++ {
		var s Snapshot
		switch rng.Intn(3) {
		case 0:
			s = m.SetYear(years[rng.Intn(len(years))])
		case 1:
			s = m.SetOutcome(Outcomes[rng.Intn(len(Outcomes))])
		default:
			s, _ = m.Select(all[rng.Intn(len(all))].ID)
			continue
		}
		assertDesc(t, s.View)
		if len(s.View) > 0 {
			require.NotNil(t, s.Selection)
			assert.Contains(t, ids(s.View), s.Selection.ID, "step %d", i)
			assert.True(t, s.InView)
		}
	}
}

func TestMachine_SetYearCopiesInput(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	y := 2020
	m.SetYear(&y)
	y = 2021
	assert.Equal(t, 2020, *m.Filter().Year)
}

func TestMachine_FilterAndSnapshotAreCopies(t *testing.T) {
	t.Parallel()

	m := New(fixture())
	y := 2020
	m.SetYear(&y)

	*m.Filter().Year = 2006
	snap := m.Snapshot()
	*snap.Filter.Year = 2006

	after := m.Snapshot()
	assert.Equal(t, 2020, *after.Filter.Year)
	require.NotNil(t, after.Selection)
	assert.Equal(t, "crew1", after.Selection.ID)
	assert.True(t, after.InView)
	assertDesc(t, after.View)
	assert.Equal(t, []string{"crew1", "demo2", "sl"}, ids(after.View))
}
