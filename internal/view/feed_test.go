package view

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_FetchAllThenMore(t *testing.T) {
	pages := defaultPages()
	src := newFakePages(pages)
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()

	assert.Nil(t, f.Data())
	assert.Nil(t, f.NextPage())

	require.NoError(t, f.FetchAll(ctx))
	assert.Equal(t, pages[0], f.Data())
	require.NotNil(t, f.NextPage())
	assert.Equal(t, 1, *f.NextPage())
	assert.False(t, f.Exhausted())
	assert.Equal(t, 1, f.PageCount())

	require.NoError(t, f.FetchMore(ctx))
	assert.Equal(t, append(append(pages[0][:0:0], pages[0]...), pages[1]...), f.Data())
	assert.Nil(t, f.NextPage())
	assert.True(t, f.Exhausted())
	assert.Equal(t, 2, f.PageCount())
	assert.Equal(t, []int{0, 1}, src.Requested())
}

func TestFeed_FetchMoreWhenExhaustedIsNoop(t *testing.T) {
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, f.FetchAll(ctx))
	require.NoError(t, f.FetchMore(ctx))
	before := f.Data()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.FetchMore(ctx))
	}

	assert.Equal(t, before, f.Data())
	assert.Equal(t, []int{0, 1}, src.Requested(), "no fetch once exhausted, and page 0 is never refetched")
}

func TestFeed_FetchMoreWhenEmptyIsNoop(t *testing.T) {
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())

	require.NoError(t, f.FetchMore(context.Background()))

	assert.Nil(t, f.Data())
	assert.Empty(t, src.Requested())
}

func TestFeed_SinglePageIsExhaustedImmediately(t *testing.T) {
	pages := defaultPages()[:1]
	f := NewPaginatedTransactionFeed(newFakePages(pages), zerolog.Nop())

	require.NoError(t, f.FetchAll(context.Background()))

	assert.True(t, f.Exhausted())
	assert.Equal(t, pages[0], f.Data())
}

func TestFeed_FetchAllResetsAccumulation(t *testing.T) {
	pages := defaultPages()
	src := newFakePages(pages)
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, f.FetchAll(ctx))
	require.NoError(t, f.FetchMore(ctx))
	require.Len(t, f.Data(), 8)

	require.NoError(t, f.FetchAll(ctx))

	assert.Equal(t, pages[0], f.Data())
	assert.Equal(t, 1, f.PageCount())
	assert.Equal(t, []int{0, 1, 0}, src.Requested())
}

func TestFeed_InvalidateData(t *testing.T) {
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, f.FetchAll(ctx))
	calls := len(src.Requested())

	f.InvalidateData()
	f.InvalidateData()

	assert.Nil(t, f.Data())
	assert.Nil(t, f.NextPage())
	assert.False(t, f.Exhausted())
	assert.Zero(t, f.PageCount())
	assert.Len(t, src.Requested(), calls, "invalidation never fetches")

	require.NoError(t, f.FetchMore(ctx))
	assert.Nil(t, f.Data(), "fetch more after invalidation must not resume")
}

func TestFeed_FailurePreservesAccumulation(t *testing.T) {
	boom := errors.New("503")
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, f.FetchAll(ctx))
	before := f.Data()

	src.FetchFunc = func(context.Context, int) error { return boom }

	err := f.FetchMore(ctx)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, f.Data())
	require.NotNil(t, f.NextPage())
	assert.Equal(t, 1, *f.NextPage())

	err = f.FetchAll(ctx)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, before, f.Data())
	assert.False(t, f.Loading())

	src.FetchFunc = nil
	require.NoError(t, f.FetchMore(ctx))
	assert.Len(t, f.Data(), 8)
}

func TestFeed_MonotonicGrowth(t *testing.T) {
	pages := defaultPages()
	pages = append(pages, pages[0], pages[1])
	f := NewPaginatedTransactionFeed(newFakePages(pages), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, f.FetchAll(ctx))
	prev := len(f.Data())
	for !f.Exhausted() {
		require.NoError(t, f.FetchMore(ctx))
		cur := len(f.Data())
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 16, prev, "pages are appended without deduplication")
}

func TestFeed_InvalidateDiscardsInFlightPage(t *testing.T) {
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, f.FetchAll(ctx))

	g := newGate()
	src.FetchFunc = func(context.Context, int) error {
		g.wait()
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- f.FetchMore(ctx) }()

	<-g.entered
	assert.True(t, f.Loading())
	f.InvalidateData()
	close(g.release)

	require.NoError(t, <-done)
	assert.Nil(t, f.Data(), "late page must not resurrect invalidated data")
	assert.False(t, f.Loading())
}

func TestFeed_ConcurrentFetchMoreIsSkipped(t *testing.T) {
	src := newFakePages(defaultPages())
	f := NewPaginatedTransactionFeed(src, zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, f.FetchAll(ctx))

	g := newGate()
	src.FetchFunc = func(context.Context, int) error {
		g.wait()
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- f.FetchMore(ctx) }()
	<-g.entered

	src.FetchFunc = nil
	require.NoError(t, f.FetchMore(ctx))

	close(g.release)
	require.NoError(t, <-done)

	assert.Len(t, f.Data(), 8, "second page appended exactly once")
	assert.Equal(t, []int{0, 1}, src.Requested())
}
