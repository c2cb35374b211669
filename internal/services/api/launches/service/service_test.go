package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"launchdeck/internal/core/launch"
	perr "launchdeck/internal/platform/errors"
	"launchdeck/internal/platform/testkit"
	"launchdeck/internal/services/api/launches/domain"
	crewdom "launchdeck/internal/services/crew/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	out   []launch.Launch
	err   error
	calls int32
}

func (f *fakeLoader) LoadLaunches(context.Context) ([]launch.Launch, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.out, f.err
}

type fakeResolver struct {
	calls int32
	delay time.Duration
}

func (f *fakeResolver) Resolve(_ context.Context, l launch.Launch) []crewdom.EnrichedCrewMember {
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(f.delay)
	out := make([]crewdom.EnrichedCrewMember, 0, len(l.Crew))
	for _, c := range l.Crew {
		out = append(out, crewdom.EnrichedCrewMember{ID: c.Crew})
	}
	return out
}

func mk(id, date string, success *bool, crew ...string) launch.Launch {
	d, ok := launch.ParseDate(date)
	l := launch.Launch{ID: id, Name: id, DateRaw: date, DateUTC: d, DateValid: ok, Success: success}
	for _, c := range crew {
		l.Crew = append(l.Crew, launch.CrewRef{Crew: c})
	}
	return l.Normalize()
}

func fixture() []launch.Launch {
	return []launch.Launch{
		mk("a", "2020-05-30T19:22:00Z", launch.Bool(true), "c1", "c2"),
		mk("b", "2021-04-23T09:49:00Z", launch.Bool(false), "c3"),
		mk("c", "2006-03-24T22:30:00Z", nil),
		mk("a", "2019-01-01T00:00:00Z", launch.Bool(true)),
	}
}

func loaded(t *testing.T, r crewdom.ResolverPort) *Catalog {
	t.Helper()
	c := New(&fakeLoader{out: fixture()}, r)
	st := c.Load(context.Background())
	require.Equal(t, domain.LoadOK, st.Status)
	return c
}

func TestCatalog_NewPanicsOnNilPorts(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, &fakeResolver{}) })
	testkit.MustPanic(t, func() { New(&fakeLoader{}, nil) })
}

func TestCatalog_StatusBeforeLoad(t *testing.T) {
	c := New(&fakeLoader{}, &fakeResolver{})
	assert.Equal(t, domain.LoadPending, c.Status().Status)
	assert.Empty(t, c.Launches())
	assert.Empty(t, c.Stats().Years)
}

func TestCatalog_LoadOnceDedupesAndSorts(t *testing.T) {
	fl := &fakeLoader{out: fixture()}
	c := New(fl, &fakeResolver{})

	st := c.Load(context.Background())
	c.Load(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&fl.calls))
	assert.Equal(t, domain.LoadOK, st.Status)
	assert.Equal(t, 3, st.Count)
	assert.False(t, st.LoadedAt.IsZero())

	ls := c.Launches()
	require.Len(t, ls, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{ls[0].ID, ls[1].ID, ls[2].ID})

	a, ok := c.Launch("a")
	require.True(t, ok)
	assert.Equal(t, 2020, a.DateUTC.Year())

	assert.Equal(t, []int{2021, 2020, 2006}, c.Stats().Years)
}

func TestCatalog_LoadFailureLeavesEmpty(t *testing.T) {
	c := New(&fakeLoader{err: perr.Unavailablef("spacex down")}, &fakeResolver{})
	st := c.Load(context.Background())

	assert.Equal(t, domain.LoadFailed, st.Status)
	assert.Contains(t, st.Error, "spacex down")
	assert.Empty(t, c.Launches())

	out, err := c.List(context.Background(), domain.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCatalog_LoadEmpty(t *testing.T) {
	c := New(&fakeLoader{out: []launch.Launch{}}, &fakeResolver{})
	assert.Equal(t, domain.LoadEmpty, c.Load(context.Background()).Status)
}

func TestCatalog_List(t *testing.T) {
	c := loaded(t, &fakeResolver{})

	y := 2020
	out, err := c.List(context.Background(), domain.ListInput{Year: &y})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "Success", out[0].OutcomeLabel)
	assert.Equal(t, 2, out[0].CrewCount)

	out, err = c.List(context.Background(), domain.ListInput{Filter: "crewed"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = c.List(context.Background(), domain.ListInput{Filter: "bogus"})
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeInvalidArgument, perr.CodeOf(err))
}

func TestCatalog_Detail(t *testing.T) {
	c := loaded(t, &fakeResolver{})

	d, err := c.Detail(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", d.OutcomeLabel)
	assert.Equal(t, "No details available", d.Details)
	assert.Equal(t, "No payload information available.", d.PayloadSummary)
	assert.Equal(t, "Not specified", d.Orbit)
	assert.NotNil(t, d.Links.Flickr.Small)

	_, err = c.Detail(context.Background(), "zzz")
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))
}

func TestCatalog_StatsView(t *testing.T) {
	c := loaded(t, &fakeResolver{})
	s, err := c.StatsView(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	require.Len(t, s.Buckets, 3)
	assert.Equal(t, 2021, s.Buckets[0].Year)
	assert.Equal(t, 0.0, s.YearSuccessRates[2021])
}

func TestCatalog_CrewSharesConcurrentResolutions(t *testing.T) {
	fr := &fakeResolver{delay: 30 * time.Millisecond}
	c := loaded(t, fr)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Crew(context.Background(), "a")
			assert.NoError(t, err)
			assert.Len(t, res.Crew, 2)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&fr.calls))
}

func TestCatalog_CrewEmptyRosterAndNotFound(t *testing.T) {
	c := loaded(t, &fakeResolver{})

	res, err := c.Crew(context.Background(), "c")
	require.NoError(t, err)
	assert.NotNil(t, res.Crew)
	assert.Empty(t, res.Crew)

	_, err = c.Crew(context.Background(), "zzz")
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))
}

func TestCatalog_CrewInterrupted(t *testing.T) {
	c := loaded(t, &fakeResolver{delay: 200 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.Crew(ctx, "a")
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestPayloadSummary_Sentences(t *testing.T) {
	assert.Equal(t, "This mission carried 2 payload(s) to space.", payloadSummary([]launch.Payload{{ID: "1"}, {ID: "2"}}))
	assert.Equal(t,
		"This mission carried 2 payload(s) to space, contributing to Satellite, Dragon research.",
		payloadSummary([]launch.Payload{{ID: "1", Type: "Satellite"}, {ID: "2", Type: "Dragon"}}))
}
