package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelka/schedbot/core/metrics"
	"github.com/otelka/schedbot/infra/logger"
)

type fetchSink struct {
	metrics.NopSink
	events []metrics.FetchEvent
}

func (s *fetchSink) RecordFetch(ev metrics.FetchEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func TestFetcherCachesWithinWindow(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("Дата,Часы\n"))
	}))
	defer srv.Close()

	sink := &fetchSink{}
	f := NewFetcher(Config{URL: srv.URL, CacheSeconds: 60}, sink, logger.NopLogger{})
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return base }

	text, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Дата,Часы\n", text)

	// Second call inside the window: served from cache.
	base = base.Add(30 * time.Second)
	_, err = f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// Past the window: refreshed.
	base = base.Add(31 * time.Second)
	_, err = f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, hits)

	require.Len(t, sink.events, 3)
	assert.False(t, sink.events[0].CacheHit)
	assert.True(t, sink.events[1].CacheHit)
	assert.False(t, sink.events[2].CacheHit)
}

func TestFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(Config{URL: srv.URL}, nil, logger.NopLogger{})
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestConfigValidate(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, 60, c.CacheSeconds)
	assert.Equal(t, 25, c.TimeoutSeconds)
	assert.Error(t, c.Validate())

	c.URL = "https://example.com/sheet.csv"
	assert.NoError(t, c.Validate())
}
