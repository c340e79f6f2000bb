package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut_AllSucceed(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	results, failed := fanOut(context.Background(), items, 3, func(_ context.Context, i int) (int, error) {
		return i * 10, nil
	})

	assert.Equal(t, 0, failed)
	sort.Ints(results)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, results)
}

func TestFanOut_FailuresAreIsolated(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	results, failed := fanOut(context.Background(), items, 4, func(_ context.Context, i int) (int, error) {
		if i%3 == 0 {
			return 0, errors.New("boom")
		}
		return i, nil
	})

	assert.Equal(t, 3, failed)
	assert.Len(t, results, 7)
	for _, r := range results {
		assert.NotZero(t, r%3, "failed items must not appear in results")
	}
}

func TestFanOut_RespectsConcurrencyLimit(t *testing.T) {
	const limit = 4
	var mu sync.Mutex
	inFlight, peak := 0, 0

	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	_, failed := fanOut(context.Background(), items, limit, func(_ context.Context, i int) (int, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()
		defer func() {
			mu.Lock()
			inFlight--
			mu.Unlock()
		}()
		return i, nil
	})

	assert.Equal(t, 0, failed)
	assert.LessOrEqual(t, peak, limit)
}

func TestFanOut_EmptyInput(t *testing.T) {
	results, failed := fanOut(context.Background(), nil, 5, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	assert.Empty(t, results)
	assert.Equal(t, 0, failed)
}

func TestFanOut_ZeroLimitUsesDefault(t *testing.T) {
	results, failed := fanOut(context.Background(), []int{1, 2, 3}, 0, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	assert.Equal(t, 0, failed)
	assert.Len(t, results, 3)
}

func TestFanOut_CancelledContextCountsRemainderAsFailed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 30)
	results, failed := fanOut(ctx, items, 2, func(ctx context.Context, i int) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return i, nil
	})

	require.Equal(t, 30, len(results)+failed)
	assert.Empty(t, results)
}

func TestFanOut_ResultsArriveInCompletionOrder(t *testing.T) {
	// Single worker forces sequential execution, so completion order
	// equals submission order; the caller is still expected to sort.
	items := []int{3, 1, 2}
	results, failed := fanOut(context.Background(), items, 1, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	require.Equal(t, 0, failed)
	assert.Equal(t, []int{3, 1, 2}, results)
}

func BenchmarkFanOut(b *testing.B) {
	items := make([]int, 200)
	for i := range items {
		items[i] = i
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = fanOut(context.Background(), items, DefaultFanoutWorkers, func(_ context.Context, i int) (string, error) {
			return fmt.Sprintf("item-%d", i), nil
		})
	}
}
