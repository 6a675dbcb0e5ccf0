package gridiron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForUpdate(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for poller update")
	}
}

func TestPoller_StartFetchesImmediately(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls atomic.Int64
	p := NewPoller("scoreboard", 30*time.Second, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "snapshot", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)

	snap := p.Snapshot()
	assert.Equal(t, PollReady, snap.State)
	assert.True(t, snap.HasData)
	assert.Equal(t, "snapshot", snap.Data)
	assert.False(t, snap.Stale)
	assert.Empty(t, snap.Error)
	assert.Equal(t, int64(1), calls.Load())
}

func TestPoller_RefetchesOnInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls atomic.Int64
	p := NewPoller("scoreboard", 30*time.Second, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}, WithClock[int](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)

	fc.BlockUntil(1) // interval ticker armed
	fc.Advance(30 * time.Second)
	waitForUpdate(t, updates)

	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, p.Snapshot().Data)
}

func TestPoller_StopHaltsFetching(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls atomic.Int64
	p := NewPoller("scoreboard", 30*time.Second, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "snapshot", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	waitForUpdate(t, updates)
	p.Stop()

	fc.Advance(5 * time.Minute)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
}

func TestPoller_FailureKeepsLastGoodData(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var fail atomic.Bool
	p := NewPoller("scoreboard", 30*time.Second, func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("upstream unavailable")
		}
		return "good", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)

	fail.Store(true)
	fc.BlockUntil(1)
	fc.Advance(30 * time.Second)
	waitForUpdate(t, updates)

	snap := p.Snapshot()
	assert.Equal(t, PollFailed, snap.State)
	assert.True(t, snap.HasData)
	assert.True(t, snap.Stale)
	assert.Equal(t, "good", snap.Data)
	assert.Contains(t, snap.Error, "upstream unavailable")
}

func TestPoller_RecoveryClearsError(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var fail atomic.Bool
	fail.Store(true)
	p := NewPoller("news", 30*time.Second, func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("upstream unavailable")
		}
		return "recovered", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)
	require.Equal(t, PollFailed, p.Snapshot().State)
	assert.False(t, p.Snapshot().HasData)

	fail.Store(false)
	p.Refresh(context.Background())
	waitForUpdate(t, updates)

	snap := p.Snapshot()
	assert.Equal(t, PollReady, snap.State)
	assert.Equal(t, "recovered", snap.Data)
	assert.False(t, snap.Stale)
	assert.Empty(t, snap.Error)
}

func TestPoller_RefreshFetchesOutOfBand(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls atomic.Int64
	p := NewPoller("scoreboard", time.Hour, func(ctx context.Context) (int64, error) {
		return calls.Add(1), nil
	}, WithClock[int64](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)

	p.Refresh(context.Background())
	waitForUpdate(t, updates)
	assert.Equal(t, int64(2), calls.Load())
}

func TestPoller_RestartDiscardsHeldSnapshot(t *testing.T) {
	fc := clockwork.NewFakeClock()
	p := NewPoller("scoreboard", 30*time.Second, func(ctx context.Context) (string, error) {
		return "nfl", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	p.Start(context.Background())
	defer p.Stop()
	waitForUpdate(t, updates)
	require.Equal(t, "nfl", p.Snapshot().Data)

	p.Restart(context.Background(), func(ctx context.Context) (string, error) {
		return "college-football", nil
	})
	waitForUpdate(t, updates)

	snap := p.Snapshot()
	assert.Equal(t, PollReady, snap.State)
	assert.Equal(t, "college-football", snap.Data)
}

func TestPoller_RestartDropsStaleInFlightResult(t *testing.T) {
	fc := clockwork.NewFakeClock()
	release := make(chan struct{})
	p := NewPoller("scoreboard", time.Hour, func(ctx context.Context) (string, error) {
		<-release
		return "old-params", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	// The first fetch is parked on the release channel when the restart
	// swaps parameters underneath it.
	p.Start(context.Background())
	defer p.Stop()

	p.Restart(context.Background(), func(ctx context.Context) (string, error) {
		return "new-params", nil
	})
	waitForUpdate(t, updates)
	require.Equal(t, "new-params", p.Snapshot().Data)

	close(release)
	time.Sleep(50 * time.Millisecond)

	snap := p.Snapshot()
	assert.Equal(t, "new-params", snap.Data)
	assert.Equal(t, PollReady, snap.State)
}

func TestPoller_StartIsIdempotent(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var calls atomic.Int64
	p := NewPoller("scoreboard", time.Hour, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "snapshot", nil
	}, WithClock[string](fc))
	updates, unsubscribe := p.Updates()
	defer unsubscribe()

	ctx := context.Background()
	p.Start(ctx)
	defer p.Stop()
	waitForUpdate(t, updates)

	p.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
}

func TestPoller_UnsubscribeRemovesListener(t *testing.T) {
	fc := clockwork.NewFakeClock()
	p := NewPoller("scoreboard", time.Hour, func(ctx context.Context) (string, error) {
		return "snapshot", nil
	}, WithClock[string](fc))

	// Short-lived subscribers must not accumulate on a process-lifetime
	// poller once they let go.
	for i := 0; i < 1000; i++ {
		_, unsubscribe := p.Updates()
		unsubscribe()
	}
	p.mu.Lock()
	remaining := len(p.notify)
	p.mu.Unlock()
	assert.Zero(t, remaining)

	dropped, unsubscribeDropped := p.Updates()
	kept, unsubscribeKept := p.Updates()
	defer unsubscribeKept()
	unsubscribeDropped()

	p.Refresh(context.Background())
	waitForUpdate(t, kept)
	select {
	case <-dropped:
		t.Fatal("unsubscribed channel still receives signals")
	default:
	}
}
