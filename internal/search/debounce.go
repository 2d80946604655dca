// Package search runs search-as-you-type lookups: keystrokes are debounced
// per key and only the newest query's answer is delivered.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// FetchFunc performs the lookup for a settled query.
type FetchFunc[T any] func(ctx context.Context, query string) (T, error)

// Result is what gets delivered for a key. Short queries deliver an empty
// Result right away without fetching.
type Result[T any] struct {
	Query string
	Items T
	Err   error
}

// ApplyFunc receives the newest result for key. It runs with the debouncer
// locked, so it must not call back into the Debouncer.
type ApplyFunc[T any] func(key string, res Result[T])

type pending struct {
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

type Debouncer[T any] struct {
	delay  time.Duration
	minLen int
	fetch  FetchFunc[T]
	apply  ApplyFunc[T]

	mu      sync.Mutex
	seq     uint64
	pending map[string]*pending
	closed  bool
}

func NewDebouncer[T any](delay time.Duration, minLen int, fetch FetchFunc[T], apply ApplyFunc[T]) *Debouncer[T] {
	return &Debouncer[T]{
		delay:   delay,
		minLen:  minLen,
		fetch:   fetch,
		apply:   apply,
		pending: make(map[string]*pending),
	}
}

// Trigger registers a keystroke for key. Any earlier timer or in-flight
// lookup for the same key is superseded.
func (d *Debouncer[T]) Trigger(key, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.stop(key)

	d.seq++
	seq := d.seq
	query = strings.TrimSpace(query)

	if utf8.RuneCountInString(query) < d.minLen {
		d.apply(key, Result[T]{Query: query})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &pending{seq: seq, cancel: cancel}
	p.timer = time.AfterFunc(d.delay, func() {
		items, err := d.fetch(ctx, query)

		d.mu.Lock()
		defer d.mu.Unlock()
		if cur, ok := d.pending[key]; !ok || cur.seq != seq {
			return
		}
		delete(d.pending, key)
		cancel()
		d.apply(key, Result[T]{Query: query, Items: items, Err: err})
	})
	d.pending[key] = p
}

// Cancel drops whatever is pending for key.
func (d *Debouncer[T]) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stop(key)
}

// Pending reports whether a lookup for key has not been delivered yet.
func (d *Debouncer[T]) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Close cancels every pending lookup; later triggers are ignored.
func (d *Debouncer[T]) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key := range d.pending {
		d.stop(key)
	}
	d.closed = true
	return nil
}

func (d *Debouncer[T]) stop(key string) {
	p, ok := d.pending[key]
	if !ok {
		return
	}
	p.timer.Stop()
	p.cancel()
	delete(d.pending, key)
}
