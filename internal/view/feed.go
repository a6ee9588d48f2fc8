package view

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
)

type feedState int

const (
	feedEmpty feedState = iota
	feedReady
	feedExhausted
)

func (s feedState) String() string {
	switch s {
	case feedReady:
		return "ready"
	case feedExhausted:
		return "exhausted"
	default:
		return "empty"
	}
}

// PaginatedTransactionFeed accumulates all-employee transaction pages in
// fetch order.
//
//	empty --FetchAll--> ready --FetchMore--> ready | exhausted
//	exhausted --FetchMore--> exhausted (no-op)
//	any --InvalidateData--> empty
//
// A result that lands after InvalidateData (or after a newer FetchAll) is
// discarded.
type PaginatedTransactionFeed struct {
	src PageSource
	log zerolog.Logger

	mu       sync.RWMutex
	state    feedState
	data     []model.Transaction
	next     *int
	pages    int
	inflight int
	gen      uint64
}

func NewPaginatedTransactionFeed(src PageSource, log zerolog.Logger) *PaginatedTransactionFeed {
	return &PaginatedTransactionFeed{src: src, log: log}
}

// FetchAll fetches the first page and, on success, replaces everything
// accumulated so far with it.
func (f *PaginatedTransactionFeed) FetchAll(ctx context.Context) error {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.begin()
	f.mu.Unlock()

	page, err := f.src.FetchTransactionPage(ctx, 0)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.end()

	if err != nil {
		f.log.Warn().Err(err).Msg("first page fetch failed")
		return fmt.Errorf("transactions page 0: %w: %w", ErrFetchFailed, err)
	}
	if gen != f.gen {
		f.log.Debug().Msg("discarding stale first page")
		return nil
	}

	f.data = append([]model.Transaction{}, page.Data...)
	f.pages = 1
	f.setNext(page.NextPage)

	f.log.Debug().Int("rows", len(f.data)).Str("state", f.state.String()).Msg("first page loaded")
	return nil
}

// FetchMore appends the page named by the current token. It does nothing
// when the feed is empty, exhausted, or already fetching.
func (f *PaginatedTransactionFeed) FetchMore(ctx context.Context) error {
	f.mu.Lock()
	if f.state != feedReady || f.inflight > 0 {
		f.log.Debug().Str("state", f.state.String()).Int("inflight", f.inflight).Msg("fetch more skipped")
		f.mu.Unlock()
		return nil
	}
	page := *f.next
	gen := f.gen
	f.begin()
	f.mu.Unlock()

	result, err := f.src.FetchTransactionPage(ctx, page)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.end()

	if err != nil {
		f.log.Warn().Err(err).Int("page", page).Msg("page fetch failed")
		return fmt.Errorf("transactions page %d: %w: %w", page, ErrFetchFailed, err)
	}
	if gen != f.gen {
		f.log.Debug().Int("page", page).Msg("discarding stale page")
		return nil
	}

	f.data = append(f.data, result.Data...)
	f.pages++
	f.setNext(result.NextPage)

	f.log.Debug().Int("page", page).Int("rows", len(f.data)).Str("state", f.state.String()).Msg("page appended")
	return nil
}

// InvalidateData drops all accumulated pages without fetching.
func (f *PaginatedTransactionFeed) InvalidateData() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.state = feedEmpty
	f.data = nil
	f.next = nil
	f.pages = 0
}

// Data returns the accumulated transactions, or nil when the feed is empty.
func (f *PaginatedTransactionFeed) Data() []model.Transaction {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.data)
}

// NextPage returns the token for the next fetch; nil when empty or exhausted.
func (f *PaginatedTransactionFeed) NextPage() *int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.next == nil {
		return nil
	}
	n := *f.next
	return &n
}

func (f *PaginatedTransactionFeed) Exhausted() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state == feedExhausted
}

func (f *PaginatedTransactionFeed) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.inflight > 0
}

func (f *PaginatedTransactionFeed) PageCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pages
}

// caller holds f.mu
func (f *PaginatedTransactionFeed) setNext(next *int) {
	if next == nil {
		f.next = nil
		f.state = feedExhausted
		return
	}
	n := *next
	f.next = &n
	f.state = feedReady
}

// caller holds f.mu
func (f *PaginatedTransactionFeed) begin() { f.inflight++ }

// caller holds f.mu
func (f *PaginatedTransactionFeed) end() { f.inflight-- }
