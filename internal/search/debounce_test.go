package search_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 20 * time.Millisecond

type recorder struct {
	mu      sync.Mutex
	results []search.Result[[]string]
	ch      chan search.Result[[]string]
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan search.Result[[]string], 16)}
}

func (r *recorder) apply(key string, res search.Result[[]string]) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
	r.ch <- res
}

func (r *recorder) next(t *testing.T) search.Result[[]string] {
	t.Helper()
	select {
	case res := <-r.ch:
		return res
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
		return search.Result[[]string]{}
	}
}

func (r *recorder) none(t *testing.T, wait time.Duration) {
	t.Helper()
	select {
	case res := <-r.ch:
		t.Fatalf("unexpected result %+v", res)
	case <-time.After(wait):
	}
}

func TestDebouncer_OnlySettledQueryIsFetched(t *testing.T) {
	var calls atomic.Int32
	var lastQuery atomic.Value
	fetch := func(ctx context.Context, q string) ([]string, error) {
		calls.Add(1)
		lastQuery.Store(q)
		return []string{q + "-result"}, nil
	}
	rec := newRecorder()
	d := search.NewDebouncer(delay, 2, fetch, rec.apply)
	defer d.Close()

	for _, q := range []string{"mi", "mil", "milh", "milho"} {
		d.Trigger("line-1", q)
	}

	res := rec.next(t)
	assert.Equal(t, "milho", res.Query)
	assert.Equal(t, []string{"milho-result"}, res.Items)
	assert.NoError(t, res.Err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "milho", lastQuery.Load())
	assert.False(t, d.Pending("line-1"))
}

func TestDebouncer_ShortQueryClearsWithoutFetch(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context, q string) ([]string, error) {
		calls.Add(1)
		return []string{q}, nil
	}
	rec := newRecorder()
	d := search.NewDebouncer(delay, 2, fetch, rec.apply)
	defer d.Close()

	d.Trigger("line-1", "milho")
	d.Trigger("line-1", " m ")

	res := rec.next(t)
	assert.Equal(t, "m", res.Query)
	assert.Nil(t, res.Items)

	rec.none(t, 3*delay)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_StaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, q string) ([]string, error) {
		if q == "ra" {
			close(started)
			<-release
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	}
	rec := newRecorder()
	d := search.NewDebouncer(delay, 2, fetch, rec.apply)
	defer d.Close()

	d.Trigger("line-1", "ra")
	<-started
	d.Trigger("line-1", "rat")
	close(release)

	res := rec.next(t)
	assert.Equal(t, "rat", res.Query)
	assert.Equal(t, []string{"fresh"}, res.Items)
	rec.none(t, 3*delay)
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	fetch := func(ctx context.Context, q string) ([]string, error) {
		return []string{q}, nil
	}
	rec := newRecorder()
	d := search.NewDebouncer(delay, 2, fetch, rec.apply)
	defer d.Close()

	d.Trigger("line-1", "milho")
	d.Trigger("line-2", "isca")

	got := map[string]bool{}
	got[rec.next(t).Query] = true
	got[rec.next(t).Query] = true
	assert.Equal(t, map[string]bool{"milho": true, "isca": true}, got)
}

func TestDebouncer_CancelAndClose(t *testing.T) {
	fetch := func(ctx context.Context, q string) ([]string, error) {
		return []string{q}, nil
	}
	rec := newRecorder()
	d := search.NewDebouncer(delay, 2, fetch, rec.apply)

	d.Trigger("line-1", "milho")
	require.True(t, d.Pending("line-1"))
	d.Cancel("line-1")
	assert.False(t, d.Pending("line-1"))
	rec.none(t, 3*delay)

	d.Trigger("line-2", "isca")
	require.NoError(t, d.Close())
	d.Trigger("line-3", "farelo")
	rec.none(t, 3*delay)
}
