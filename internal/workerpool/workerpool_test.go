package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/internal/workerpool"
)

func TestRunInvalidWorkerCount(t *testing.T) {
	err := workerpool.Run(0, 10, func(int) error { return nil })
	require.ErrorIs(t, err, workerpool.ErrResourcePool)
}

func TestRunExecutesAllTasks(t *testing.T) {
	var count int64
	err := workerpool.Run(4, 100, func(i int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(100), count)
}

func TestRunPropagatesFirstError(t *testing.T) {
	boom := errorSentinel{}
	err := workerpool.Run(2, 10, func(i int) error {
		if i == 5 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRunChunkedCoversEveryIndex(t *testing.T) {
	seen := make([]int32, 23)
	err := workerpool.RunChunked(3, len(seen), 5, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
		return nil
	})
	require.NoError(t, err)
	for i, v := range seen {
		require.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestRunChunkedInvalidWorkerCount(t *testing.T) {
	err := workerpool.RunChunked(-1, 10, 2, func(int, int) error { return nil })
	require.ErrorIs(t, err, workerpool.ErrResourcePool)
}

type errorSentinel struct{}

func (errorSentinel) Error() string { return "boom" }
