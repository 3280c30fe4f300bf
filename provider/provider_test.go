package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// scriptedFetcher returns whatever was pushed last.
type scriptedFetcher struct {
	sync.Mutex
	s     *plan.Snapshot
	err   error
	calls int
}

func (f *scriptedFetcher) Fetch(_ context.Context, _ string) (*plan.Snapshot, error) {
	f.Lock()
	defer f.Unlock()

	f.calls++
	return f.s, f.err
}

func (f *scriptedFetcher) push(s *plan.Snapshot, err error) {
	f.Lock()
	defer f.Unlock()
	f.s, f.err = s, err
}

type recordingObserver struct {
	fetches, failures, stale, snapshots int
}

func (o *recordingObserver) ObserveFetch(_ time.Duration, err error) {
	o.fetches++
	if err != nil {
		o.failures++
	}
}

func (o *recordingObserver) ObserveStale() {
	o.stale++
}

func (o *recordingObserver) ObserveSnapshot(*plan.Snapshot) {
	o.snapshots++
}

func snapshot(t *testing.T, spouts, bolts []string) *plan.Snapshot {
	topology := &pb.Topology{Name: "wordcount"}
	for _, s := range spouts {
		topology.Spouts = append(topology.Spouts, &pb.Spout{Comp: &pb.Component{Name: s}})
	}
	for _, b := range bolts {
		topology.Bolts = append(topology.Bolts, &pb.Bolt{Comp: &pb.Component{Name: b}})
	}
	s, err := plan.New("wordcount", &pb.PhysicalPlan{Topology: topology}, time.Now())
	require.NoError(t, err)
	return s
}

var (
	errTransport = fmt.Errorf("GET http://10.0.0.5:9000/get_current_physical_plan: status 500: %w", tmaster.ErrTransport)
	errDecode    = fmt.Errorf("physical plan of wordcount: unexpected EOF: %w", tmaster.ErrDecode)
	errLocation  = fmt.Errorf("no master registered for wordcount: %w", statemgr.ErrLocationUnavailable)
)

type ProviderSuite struct {
	suite.Suite

	fetcher  *scriptedFetcher
	observer *recordingObserver
	provider *Provider
	ctx      context.Context
}

func TestProvider(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) SetupTest() {
	s.fetcher = &scriptedFetcher{}
	s.observer = &recordingObserver{}
	s.provider = New("wordcount", s.fetcher, s.observer)
	s.ctx = context.Background()
}

func (s *ProviderSuite) TestCurrentCachesSuccess() {
	snap := snapshot(s.T(), []string{"word"}, []string{"count"})
	s.fetcher.push(snap, nil)

	got, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)
	s.Same(snap, got)
	s.Same(snap, s.provider.Cached())
}

func (s *ProviderSuite) TestCurrentDoesNotSwallowErrors() {
	s.fetcher.push(snapshot(s.T(), []string{"word"}, nil), nil)
	_, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)

	s.fetcher.push(nil, errTransport)
	got, err := s.provider.Current(s.ctx)
	s.Nil(got)

	var fetchErr *FetchError
	s.Require().True(errors.As(err, &fetchErr))
	s.Equal("wordcount", fetchErr.Topology)
	s.True(errors.Is(err, tmaster.ErrTransport))
}

// A cached plan is served unmodified when fetching fails, whatever the reason.
func (s *ProviderSuite) TestFallbackToCached() {
	cached := snapshot(s.T(), []string{"word"}, []string{"bolt1"})
	s.fetcher.push(cached, nil)
	_, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)

	for _, cause := range []error{errTransport, errDecode, errLocation} {
		s.fetcher.push(nil, cause)

		got, err := s.provider.CurrentOrCached(s.ctx)
		s.NoError(err)
		s.Same(cached, got)
		s.Equal([]string{"bolt1"}, got.BoltNames())
		s.Same(cached, s.provider.Cached())
	}
	s.Equal(3, s.observer.stale)
}

func (s *ProviderSuite) TestNoFallbackWithoutCache() {
	s.fetcher.push(nil, errLocation)

	_, currentErr := s.provider.Current(s.ctx)
	got, err := s.provider.CurrentOrCached(s.ctx)

	s.Nil(got)
	s.Require().Error(err)
	s.IsType(currentErr, err)
	s.True(errors.Is(err, statemgr.ErrLocationUnavailable))
	s.Nil(s.provider.Cached())
	s.Zero(s.observer.stale)
}

func (s *ProviderSuite) TestFreshOverridesCached() {
	first := snapshot(s.T(), []string{"x1"}, nil)
	second := snapshot(s.T(), []string{"x2"}, nil)

	s.fetcher.push(first, nil)
	_, err := s.provider.CurrentOrCached(s.ctx)
	s.Require().NoError(err)

	s.fetcher.push(second, nil)
	got, err := s.provider.CurrentOrCached(s.ctx)
	s.Require().NoError(err)
	s.Same(second, got)
	s.Same(second, s.provider.Cached())
}

func (s *ProviderSuite) TestFailureKeepsPreviousCache() {
	cached := snapshot(s.T(), []string{"x1"}, nil)
	s.fetcher.push(cached, nil)
	_, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)

	s.fetcher.push(nil, errDecode)
	_, err = s.provider.Current(s.ctx)
	s.True(errors.Is(err, tmaster.ErrDecode))
	s.Same(cached, s.provider.Cached())
}

func (s *ProviderSuite) TestResolve() {
	s.fetcher.push(nil, errTransport)
	o := s.provider.Resolve(s.ctx)
	s.Nil(o.Snapshot)
	s.Error(o.Err)
	s.False(o.Stale())

	cached := snapshot(s.T(), []string{"x1"}, nil)
	s.fetcher.push(cached, nil)
	o = s.provider.Resolve(s.ctx)
	s.NoError(o.Err)
	s.False(o.Stale())
	s.Same(cached, o.Snapshot)

	s.fetcher.push(nil, errTransport)
	o = s.provider.Resolve(s.ctx)
	s.NoError(o.Err)
	s.True(o.Stale())
	s.True(errors.Is(o.StaleCause, tmaster.ErrTransport))
	s.Same(cached, o.Snapshot)
}

func (s *ProviderSuite) TestEmptyPlan() {
	s.fetcher.push(snapshot(s.T(), nil, nil), nil)

	_, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)
	s.NotNil(s.provider.Cached())

	names, err := s.provider.SpoutNames(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *ProviderSuite) TestNamesAreIndependentCopies() {
	s.fetcher.push(snapshot(s.T(), []string{"x1", "x2"}, []string{"y1"}), nil)

	first, err := s.provider.SpoutNames(s.ctx)
	s.Require().NoError(err)
	second, err := s.provider.SpoutNames(s.ctx)
	s.Require().NoError(err)

	s.Equal(first, second)
	first[0] = "mutated"
	s.Equal([]string{"x1", "x2"}, second)

	third, err := s.provider.SpoutNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"x1", "x2"}, third)
}

func (s *ProviderSuite) TestComponentNames() {
	spouts := []string{"x1", "x2", "x3"}
	bolts := []string{"y1", "y2"}
	s.fetcher.push(snapshot(s.T(), spouts, bolts), nil)

	all, err := s.provider.ComponentNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"y1", "y2", "x1", "x2", "x3"}, all)
	s.Len(all, len(spouts)+len(bolts))

	gotBolts, err := s.provider.BoltNames(s.ctx)
	s.Require().NoError(err)
	s.Equal(bolts, gotBolts)
}

func (s *ProviderSuite) TestNamesUseCacheOnFailure() {
	s.fetcher.push(snapshot(s.T(), []string{"x1"}, []string{"bolt1"}), nil)
	_, err := s.provider.Current(s.ctx)
	s.Require().NoError(err)

	s.fetcher.push(nil, errTransport)
	spouts, err := s.provider.SpoutNames(s.ctx)
	s.NoError(err)
	s.Equal([]string{"x1"}, spouts)
	bolts, err := s.provider.BoltNames(s.ctx)
	s.NoError(err)
	s.Equal([]string{"bolt1"}, bolts)
	all, err := s.provider.ComponentNames(s.ctx)
	s.NoError(err)
	s.Equal([]string{"bolt1", "x1"}, all)
}

func (s *ProviderSuite) TestNamesFailWithoutCache() {
	s.fetcher.push(nil, errTransport)

	_, err := s.provider.SpoutNames(s.ctx)
	s.True(errors.Is(err, tmaster.ErrTransport))
	_, err = s.provider.BoltNames(s.ctx)
	s.True(errors.Is(err, tmaster.ErrTransport))
	_, err = s.provider.ComponentNames(s.ctx)
	s.True(errors.Is(err, tmaster.ErrTransport))
}

func (s *ProviderSuite) TestObserver() {
	s.fetcher.push(snapshot(s.T(), nil, nil), nil)
	_, _ = s.provider.CurrentOrCached(s.ctx)
	s.fetcher.push(nil, errTransport)
	_, _ = s.provider.CurrentOrCached(s.ctx)

	s.Equal(2, s.observer.fetches)
	s.Equal(1, s.observer.failures)
	s.Equal(1, s.observer.stale)
	s.Equal(2, s.observer.snapshots)
}

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{Topology: "wordcount", Err: errTransport}
	assert.Contains(t, err.Error(), "wordcount")
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, errTransport, errors.Unwrap(err))
}

func TestNilObserver(t *testing.T) {
	f := &scriptedFetcher{}
	f.push(nil, errTransport)
	p := New("wordcount", f, nil)

	_, err := p.CurrentOrCached(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "wordcount", p.Topology())
}

// slowFetcher tracks how many fetches run at the same time.
type slowFetcher struct {
	snapshot *plan.Snapshot
	inFlight int32
	maxSeen  int32
	calls    int32
}

func (f *slowFetcher) Fetch(context.Context, string) (*plan.Snapshot, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	atomic.AddInt32(&f.calls, 1)

	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return f.snapshot, nil
}

func TestConcurrentCallersAreSerialized(t *testing.T) {
	const callers = 20

	f := &slowFetcher{snapshot: snapshot(t, []string{"x1"}, []string{"y1"})}
	p := New("wordcount", f, nil)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			var err error
			switch i % 3 {
			case 0:
				_, err = p.Current(context.Background())
			case 1:
				_, err = p.CurrentOrCached(context.Background())
			default:
				_, err = p.ComponentNames(context.Background())
			}
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, f.maxSeen)
	assert.EqualValues(t, callers, f.calls)
}
