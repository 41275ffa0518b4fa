package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ViewKind identifies which collection a view event belongs to.
type ViewKind string

const (
	KindNews  ViewKind = "news"
	KindVideo ViewKind = "video"
)

// ViewEvent is one recorded view of a content record.
type ViewEvent struct {
	Kind ViewKind
	ID   string
}

// Incrementer applies an aggregated view delta to one record.
type Incrementer interface {
	IncrementViews(ctx context.Context, id string, delta int64) error
}

// ViewQueueConfig configures the view pipeline.
type ViewQueueConfig struct {
	Workers       int
	BufferSize    int
	FlushInterval time.Duration
	Logger        *zap.Logger
}

// ViewQueue buffers view events in memory and periodically flushes the
// aggregated deltas to the store. A burst of views on one record costs a
// single store write per flush window.
type ViewQueue struct {
	news   Incrementer
	videos Incrementer

	workers       int
	flushInterval time.Duration
	logger        *zap.Logger

	events  chan ViewEvent
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewViewQueue builds the view pipeline over the given incrementers.
func NewViewQueue(news, videos Incrementer, cfg ViewQueueConfig) *ViewQueue {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 64
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &ViewQueue{
		news:          news,
		videos:        videos,
		workers:       cfg.Workers,
		flushInterval: cfg.FlushInterval,
		logger:        cfg.Logger,
		events:        make(chan ViewEvent, cfg.BufferSize),
	}
}

// Start begins event aggregation. Safe to call once.
func (q *ViewQueue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	q.wg.Add(1)
	go q.aggregate()
	q.started = true
	q.logger.Sugar().Infow("view queue started", "workers", q.workers, "flush_interval", q.flushInterval)
}

// Stop flushes pending deltas and waits for workers to exit.
func (q *ViewQueue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.mu.Unlock()
	q.wg.Wait()
	q.logger.Sugar().Infow("view queue stopped")
}

// Record pushes one view event onto the queue. A full buffer drops the
// event rather than stalling the request path.
func (q *ViewQueue) Record(event ViewEvent) error {
	q.mu.Lock()
	started := q.started
	q.mu.Unlock()

	if !started {
		return fmt.Errorf("view queue not started")
	}

	select {
	case q.events <- event:
		return nil
	default:
		q.logger.Sugar().Warnw("view queue full, dropping event", "kind", event.Kind, "id", event.ID)
		return nil
	}
}

func (q *ViewQueue) aggregate() {
	defer q.wg.Done()
	pending := make(map[ViewEvent]int64)
	ticker := time.NewTicker(q.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			q.flush(pending)
			return
		case event := <-q.events:
			pending[event]++
		case <-ticker.C:
			if len(pending) == 0 {
				continue
			}
			q.flush(pending)
			pending = make(map[ViewEvent]int64)
		}
	}
}

// flush applies aggregated deltas with a bounded worker pool. The final
// flush on shutdown uses a fresh context since the queue's is cancelled.
func (q *ViewQueue) flush(pending map[ViewEvent]int64) {
	if len(pending) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sem := make(chan struct{}, q.workers)
	var wg sync.WaitGroup
	for event, delta := range pending {
		wg.Add(1)
		sem <- struct{}{}
		go func(e ViewEvent, d int64) {
			defer wg.Done()
			defer func() { <-sem }()
			target := q.news
			if e.Kind == KindVideo {
				target = q.videos
			}
			if target == nil {
				return
			}
			if err := target.IncrementViews(ctx, e.ID, d); err != nil {
				q.logger.Sugar().Warnw("failed to flush views", "kind", e.Kind, "id", e.ID, "delta", d, "error", err)
			}
		}(event, delta)
	}
	wg.Wait()
}
