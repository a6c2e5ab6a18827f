// Package autocomplete drives search-as-you-type: it debounces keystrokes, cancels
// superseded requests and only ever delivers the newest query's suggestions.
package autocomplete

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"eventhub/models"
)

const (
	DefaultDelay   = 300 * time.Millisecond
	DefaultTimeout = 5 * time.Second

	// FailureMessage is what the UI shows for ErrFetchFailed.
	FailureMessage = "Failed to fetch suggestions"
)

// ErrFetchFailed wraps every fetch error other than cancellation.
var ErrFetchFailed = errors.New("failed to fetch suggestions")

// Fetcher retrieves suggestions for a query.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]models.Suggestion, error)
}

// Result is one delivered response. Err is nil or wraps ErrFetchFailed.
type Result struct {
	Seq         uint64
	Query       string
	Suggestions []models.Suggestion
	Err         error
}

type Option func(*Debouncer)

func WithDelay(d time.Duration) Option {
	return func(db *Debouncer) { db.delay = d }
}

func WithTimeout(d time.Duration) Option {
	return func(db *Debouncer) { db.timeout = d }
}

// Debouncer sequences autocomplete requests. Each Submit supersedes the previous
// one: its pending wait or in-flight fetch is cancelled, and a late answer from it
// is discarded because its sequence number is no longer the latest.
type Debouncer struct {
	fetcher Fetcher
	deliver func(Result)
	delay   time.Duration
	timeout time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewDebouncer creates a Debouncer that hands results to deliver. deliver runs with the
// Debouncer's lock held and must not call back into it.
func NewDebouncer(f Fetcher, deliver func(Result), opts ...Option) *Debouncer {
	d := &Debouncer{
		fetcher: f,
		deliver: deliver,
		delay:   DefaultDelay,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit registers a new query and returns its sequence number. A blank query
// delivers an empty result immediately.
func (d *Debouncer) Submit(query string) uint64 {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return 0
	}
	d.seq++
	seq := d.seq
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	if strings.TrimSpace(query) == "" {
		d.deliver(Result{Seq: seq, Query: query, Suggestions: []models.Suggestion{}})
		d.mu.Unlock()
		return seq
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(ctx, seq, query)
	return seq
}

func (d *Debouncer) run(ctx context.Context, seq uint64, query string) {
	defer d.wg.Done()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	suggestions, err := d.fetcher.Fetch(fetchCtx, query)
	if err != nil {
		// Superseded or closed: drop silently.
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		suggestions = []models.Suggestion{}
	}
	d.deliverIfLatest(Result{Seq: seq, Query: query, Suggestions: suggestions, Err: err})
}

func (d *Debouncer) deliverIfLatest(r Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || r.Seq != d.seq {
		return
	}
	d.deliver(r)
}

// Latest returns the sequence number of the most recent Submit.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// Close cancels any pending request and waits for background work to finish.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()
	d.wg.Wait()
}
