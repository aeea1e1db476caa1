// Package sheet provides the table sources: an HTTP fetcher with a fixed-TTL
// cache and a local XLSX reader. Both yield the raw delimiter-separated text
// the schedule pipeline consumes.
package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/otelka/schedbot/core/logger"
	"github.com/otelka/schedbot/core/metrics"
)

// Source yields the raw table text.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// Fetcher downloads the export over HTTP and keeps the last copy for a fixed
// validity window. The cache is owned by the Fetcher and guarded by a mutex,
// so concurrent requests share one refresh instead of racing.
type Fetcher struct {
	url    string
	ttl    time.Duration
	client *http.Client
	sink   metrics.Sink
	log    logger.Logger

	mu        sync.Mutex
	text      string
	fetchedAt time.Time

	now func() time.Time
}

// NewFetcher builds a Fetcher from the configuration. The sink may be nil.
func NewFetcher(cfg Config, sink metrics.Sink, log logger.Logger) *Fetcher {
	cfg.SetDefaults()
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Fetcher{
		url:    cfg.URL,
		ttl:    time.Duration(cfg.CacheSeconds) * time.Second,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		sink:   sink,
		log:    log,
		now:    time.Now,
	}
}

// Fetch returns the cached text when it is still fresh and refreshes it
// otherwise. A failed refresh is returned as an error; the stale copy is not
// served.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	start := f.now()
	if f.text != "" && start.Sub(f.fetchedAt) < f.ttl {
		f.record(metrics.FetchEvent{CacheHit: true, Bytes: len(f.text), Time: start})
		return f.text, nil
	}

	text, err := f.download(ctx)
	ev := metrics.FetchEvent{Bytes: len(text), Err: err != nil, Duration: f.now().Sub(start), Time: start}
	f.record(ev)
	if err != nil {
		return "", err
	}

	f.text = text
	f.fetchedAt = start
	f.log.Debugf("fetched %d bytes from sheet", len(text))
	return text, nil
}

func (f *Fetcher) download(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch sheet: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Warnf("close response body: %v", cerr)
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet body: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) record(ev metrics.FetchEvent) {
	rec, ok := f.sink.(metrics.FetchRecorder)
	if !ok {
		return
	}
	if err := rec.RecordFetch(ev); err != nil {
		f.log.Warnf("record fetch: %v", err)
	}
}
