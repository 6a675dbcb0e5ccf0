package gridiron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// PollState is the lifecycle state of a polled data domain.
type PollState string

const (
	PollIdle    PollState = "idle"
	PollLoading PollState = "loading"
	PollReady   PollState = "ready"
	PollFailed  PollState = "failed"
)

// FetchFunc loads one snapshot of a data domain.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is the externally visible result slot of a Poller. After a
// failure the last successful Data survives with Stale set, so consumers can
// keep rendering it alongside the error.
type Snapshot[T any] struct {
	State     PollState `json:"state"`
	Data      T         `json:"data"`
	HasData   bool      `json:"hasData"`
	Stale     bool      `json:"stale"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Poller owns the refresh lifecycle of one data domain: an immediate fetch
// on Start, a fixed-interval re-fetch until Stop, out-of-band refreshes, and
// a restart path for parameter changes. Every issued fetch carries a
// generation number; a completion is applied only while its generation is
// still the latest issued, so late responses from a superseded parameter
// set can never overwrite fresher data.
type Poller[T any] struct {
	clock    clockwork.Clock
	logger   *slog.Logger
	interval time.Duration
	domain   string

	mu        sync.Mutex
	fetch     FetchFunc[T]
	state     PollState
	data      T
	hasData   bool
	err       error
	updatedAt time.Time
	issued    uint64
	cancel    context.CancelFunc
	notify    map[chan struct{}]struct{}
}

// PollerOption configures a Poller.
type PollerOption[T any] func(*Poller[T])

// WithClock substitutes the wall clock, letting tests drive the interval.
func WithClock[T any](clock clockwork.Clock) PollerOption[T] {
	return func(p *Poller[T]) { p.clock = clock }
}

// WithLogger sets the poller's logger.
func WithLogger[T any](logger *slog.Logger) PollerOption[T] {
	return func(p *Poller[T]) { p.logger = logger }
}

// NewPoller builds a poller for one data domain. The domain name only feeds
// log lines.
func NewPoller[T any](domain string, interval time.Duration, fetch FetchFunc[T], opts ...PollerOption[T]) *Poller[T] {
	p := &Poller[T]{
		clock:    clockwork.NewRealClock(),
		logger:   slog.Default(),
		interval: interval,
		domain:   domain,
		fetch:    fetch,
		state:    PollIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start triggers an immediate fetch and then re-fetches on the fixed
// interval until Stop or context cancellation.
func (p *Poller[T]) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	if !p.hasData {
		p.state = PollLoading
	}
	gen := p.nextGenLocked()
	p.mu.Unlock()

	go p.runFetch(loopCtx, gen)
	go p.loop(loopCtx)
}

func (p *Poller[T]) loop(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}
			p.mu.Lock()
			gen := p.nextGenLocked()
			p.mu.Unlock()
			p.runFetch(ctx, gen)
		}
	}
}

// Refresh triggers an out-of-band fetch without resetting the interval
// timer. Safe to call while a scheduled fetch is in flight; whichever
// completion is still current wins the result slot.
func (p *Poller[T]) Refresh(ctx context.Context) {
	p.mu.Lock()
	gen := p.nextGenLocked()
	p.mu.Unlock()
	p.runFetch(ctx, gen)
}

// Restart swaps the fetch function (a parameter change such as a league
// switch), discards the held snapshot so stale data is never shown against
// the new parameters, and begins a fresh polling schedule. Any in-flight
// fetch for the old parameters is not cancelled; its completion is dropped
// by the generation guard.
func (p *Poller[T]) Restart(ctx context.Context, fetch FetchFunc[T]) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	var zero T
	p.fetch = fetch
	p.data = zero
	p.hasData = false
	p.err = nil
	p.state = PollLoading
	p.nextGenLocked() // invalidate anything in flight
	p.mu.Unlock()

	p.Start(ctx)
}

// Stop cancels the periodic timer. No further scheduled fetch fires once
// Stop returns.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Snapshot returns a copy of the current result slot.
func (p *Poller[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := Snapshot[T]{
		State:     p.state,
		Data:      p.data,
		HasData:   p.hasData,
		UpdatedAt: p.updatedAt,
	}
	if p.err != nil {
		snap.Error = p.err.Error()
		snap.Stale = p.hasData
	}
	return snap
}

// Updates returns a channel that receives a signal after every applied
// fetch result, plus an unsubscribe func the caller must invoke when done.
// Used by the websocket feed; pollers outlive any one connection, so a
// subscriber that never unsubscribes would be signalled forever.
func (p *Poller[T]) Updates() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	p.mu.Lock()
	if p.notify == nil {
		p.notify = make(map[chan struct{}]struct{})
	}
	p.notify[ch] = struct{}{}
	p.mu.Unlock()

	unsubscribe := func() {
		p.mu.Lock()
		delete(p.notify, ch)
		p.mu.Unlock()
	}
	return ch, unsubscribe
}

// nextGenLocked issues a new request generation. Callers hold p.mu.
func (p *Poller[T]) nextGenLocked() uint64 {
	p.issued++
	return p.issued
}

func (p *Poller[T]) runFetch(ctx context.Context, gen uint64) {
	p.mu.Lock()
	fetch := p.fetch
	p.mu.Unlock()

	data, err := fetch(ctx)

	p.mu.Lock()
	if gen != p.issued {
		// A newer request was issued while this one was in flight; its
		// result is authoritative, ours is discarded.
		p.mu.Unlock()
		return
	}
	if err != nil {
		p.err = err
		p.state = PollFailed
		p.logger.Warn("poll failed", "domain", p.domain, "error", err)
	} else {
		p.data = data
		p.hasData = true
		p.err = nil
		p.state = PollReady
		p.updatedAt = p.clock.Now()
	}
	listeners := make([]chan struct{}, 0, len(p.notify))
	for ch := range p.notify {
		listeners = append(listeners, ch)
	}
	p.mu.Unlock()

	for _, ch := range listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
