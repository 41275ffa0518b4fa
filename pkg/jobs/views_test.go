package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockIncrementer struct {
	mu     sync.Mutex
	deltas map[string]int64
	calls  int
}

func (m *mockIncrementer) IncrementViews(ctx context.Context, id string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deltas == nil {
		m.deltas = make(map[string]int64)
	}
	m.deltas[id] += delta
	m.calls++
	return nil
}

func (m *mockIncrementer) delta(id string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deltas[id]
}

func (m *mockIncrementer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestViewQueueCoalescesEvents(t *testing.T) {
	news := &mockIncrementer{}
	videos := &mockIncrementer{}
	// A long flush interval keeps the ticker out of the test; the final
	// flush on Stop applies the aggregated deltas.
	q := NewViewQueue(news, videos, ViewQueueConfig{
		Workers:       2,
		BufferSize:    32,
		FlushInterval: time.Hour,
		Logger:        zap.NewNop(),
	})
	q.Start(context.Background())

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Record(ViewEvent{Kind: KindNews, ID: "article-1"}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, q.Record(ViewEvent{Kind: KindVideo, ID: "video-1"}))
	}

	require.Eventually(t, func() bool { return len(q.events) == 0 }, time.Second, time.Millisecond)
	q.Stop()

	assert.Equal(t, int64(5), news.delta("article-1"))
	assert.Equal(t, 1, news.callCount())
	assert.Equal(t, int64(2), videos.delta("video-1"))
	assert.Equal(t, 1, videos.callCount())
}

func TestViewQueueTickerFlush(t *testing.T) {
	news := &mockIncrementer{}
	q := NewViewQueue(news, nil, ViewQueueConfig{
		FlushInterval: 10 * time.Millisecond,
		Logger:        zap.NewNop(),
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Record(ViewEvent{Kind: KindNews, ID: "article-1"}))
	require.Eventually(t, func() bool { return news.delta("article-1") == 1 }, time.Second, time.Millisecond)
}

func TestViewQueueRecordBeforeStart(t *testing.T) {
	q := NewViewQueue(&mockIncrementer{}, nil, ViewQueueConfig{Logger: zap.NewNop()})
	err := q.Record(ViewEvent{Kind: KindNews, ID: "article-1"})
	require.Error(t, err)
}

func TestViewQueueStopIsIdempotent(t *testing.T) {
	q := NewViewQueue(&mockIncrementer{}, nil, ViewQueueConfig{Logger: zap.NewNop()})
	q.Stop()

	q.Start(context.Background())
	q.Stop()
	q.Stop()
}

func TestViewQueueDefaults(t *testing.T) {
	q := NewViewQueue(nil, nil, ViewQueueConfig{})
	assert.Equal(t, 2, q.workers)
	assert.Equal(t, 5*time.Second, q.flushInterval)
	assert.Equal(t, 128, cap(q.events))
}
