// Package provider serves the physical plan of a topology to the rest of the
// service. It remembers the last plan it fetched successfully and falls back
// to it when the topology master can't be reached.
package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
)

// Fetcher fetches the current plan of a topology.
type Fetcher interface {
	Fetch(ctx context.Context, topology string) (*plan.Snapshot, error)
}

// Observer is notified about every fetch the provider makes.
type Observer interface {
	ObserveFetch(took time.Duration, err error)
	ObserveStale()
	ObserveSnapshot(s *plan.Snapshot)
}

// FetchError is returned when a fresh plan could not be obtained. It wraps
// the reason, which matches one of statemgr.ErrLocationUnavailable,
// tmaster.ErrTransport or tmaster.ErrDecode.
type FetchError struct {
	Topology string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching physical plan of %s: %s", e.Topology, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Outcome is the result of asking for the plan with fallback to the cache.
type Outcome struct {
	// Snapshot is nil only when Err is set.
	Snapshot *plan.Snapshot
	Err      error
	// StaleCause is the fetch error that made the provider serve the cached
	// Snapshot. It is nil when Snapshot is fresh.
	StaleCause error
}

func (o Outcome) Stale() bool {
	return o.StaleCause != nil
}

// Provider is safe for concurrent use. Fetches are serialized: a caller
// waits for the fetch in flight to finish and then does its own.
type Provider struct {
	l sync.Mutex

	topology string
	fetcher  Fetcher
	observer Observer

	cached *plan.Snapshot
}

func New(topology string, fetcher Fetcher, observer Observer) *Provider {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Provider{
		topology: topology,
		fetcher:  fetcher,
		observer: observer,
	}
}

func (p *Provider) Topology() string {
	return p.topology
}

// Current fetches the plan from the topology master. The cache is updated
// on success and left alone on failure. The error is always a *FetchError.
func (p *Provider) Current(ctx context.Context) (*plan.Snapshot, error) {
	p.l.Lock()
	defer p.l.Unlock()

	return p.refresh(ctx)
}

// CurrentOrCached returns a fresh plan if one can be fetched and the cached
// plan otherwise. It fails only if no plan was ever fetched.
func (p *Provider) CurrentOrCached(ctx context.Context) (*plan.Snapshot, error) {
	o := p.Resolve(ctx)
	return o.Snapshot, o.Err
}

// Resolve is CurrentOrCached with the staleness of the result spelled out.
func (p *Provider) Resolve(ctx context.Context) Outcome {
	p.l.Lock()
	defer p.l.Unlock()

	fresh, err := p.refresh(ctx)
	switch {
	case err == nil:
		p.observer.ObserveSnapshot(fresh)
		return Outcome{Snapshot: fresh}
	case p.cached != nil:
		log.Warnw("serving cached physical plan", log.Topology(p.topology), "fetched_at", p.cached.FetchedAt, log.Err(err))
		p.observer.ObserveStale()
		p.observer.ObserveSnapshot(p.cached)
		return Outcome{Snapshot: p.cached, StaleCause: err}
	default:
		return Outcome{Err: err}
	}
}

// Cached returns the last successfully fetched plan without fetching. It
// returns nil before the first successful fetch.
func (p *Provider) Cached() *plan.Snapshot {
	p.l.Lock()
	defer p.l.Unlock()

	return p.cached
}

// SpoutNames returns the names of the spouts in the current or cached plan.
func (p *Provider) SpoutNames(ctx context.Context) ([]string, error) {
	s, err := p.CurrentOrCached(ctx)
	if err != nil {
		return nil, err
	}
	return s.SpoutNames(), nil
}

// BoltNames returns the names of the bolts in the current or cached plan.
func (p *Provider) BoltNames(ctx context.Context) ([]string, error) {
	s, err := p.CurrentOrCached(ctx)
	if err != nil {
		return nil, err
	}
	return s.BoltNames(), nil
}

// ComponentNames returns the bolt names followed by the spout names.
func (p *Provider) ComponentNames(ctx context.Context) ([]string, error) {
	s, err := p.CurrentOrCached(ctx)
	if err != nil {
		return nil, err
	}
	return s.ComponentNames(), nil
}

// refresh must be called with the lock held.
func (p *Provider) refresh(ctx context.Context) (*plan.Snapshot, error) {
	start := time.Now()
	s, err := p.fetcher.Fetch(ctx, p.topology)
	p.observer.ObserveFetch(time.Since(start), err)
	if err != nil {
		log.Debugw("couldn't fetch physical plan", log.Topology(p.topology), "kind", tmaster.Kind(err), log.Err(err))
		return nil, &FetchError{Topology: p.topology, Err: err}
	}

	if p.cached != nil && p.cached.Fingerprint != s.Fingerprint {
		log.Infow("physical plan changed", log.Topology(p.topology), "fingerprint", s.Fingerprint)
	}
	p.cached = s
	return s, nil
}

type nopObserver struct{}

func (nopObserver) ObserveFetch(time.Duration, error) {}
func (nopObserver) ObserveStale()                     {}
func (nopObserver) ObserveSnapshot(*plan.Snapshot)    {}
