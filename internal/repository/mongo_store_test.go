package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azharul-dev/islamichub-api/internal/models"
)

type mockQueryObserver struct {
	collections []string
	durations   []time.Duration
}

func (m *mockQueryObserver) ObserveStoreQuery(collection string, duration time.Duration) {
	m.collections = append(m.collections, collection)
	m.durations = append(m.durations, duration)
}

func TestMongoStoreQueryContextAppliesTimeout(t *testing.T) {
	store := &MongoStore[models.Surah]{desc: quranDescriptor, timeout: 250 * time.Millisecond}

	ctx, cancel := store.queryContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestMongoStoreQueryContextZeroTimeoutUnbounded(t *testing.T) {
	store := &MongoStore[models.Surah]{desc: quranDescriptor}

	ctx, cancel := store.queryContext(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}

func TestMongoStoreObserveReportsCollection(t *testing.T) {
	observer := &mockQueryObserver{}
	store := &MongoStore[models.Surah]{desc: quranDescriptor, observer: observer}

	store.observe(time.Now().Add(-5 * time.Millisecond))

	require.Len(t, observer.collections, 1)
	assert.Equal(t, "quran", observer.collections[0])
	assert.GreaterOrEqual(t, observer.durations[0], 5*time.Millisecond)
}

func TestMongoStoreObserveNilObserver(t *testing.T) {
	store := &MongoStore[models.Surah]{desc: quranDescriptor}

	assert.NotPanics(t, func() {
		store.observe(time.Now())
	})
}
