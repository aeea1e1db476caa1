package metrics

import "time"

// RequestEvent records one handled schedule request.
type RequestEvent struct {
	Command  string
	Group    string
	Date     string
	Outcome  string // "ok", "header_not_found", "group_not_found", "fetch_error", "parse_error"
	Duration time.Duration
	Time     time.Time
}

// FetchEvent records one table-source access.
type FetchEvent struct {
	CacheHit bool
	Bytes    int
	Err      bool
	Duration time.Duration
	Time     time.Time
}

// Sink records request events for observability purposes.
type Sink interface {
	RecordRequest(ev RequestEvent) error
}

// FetchRecorder is implemented by sinks that also track source fetches.
type FetchRecorder interface {
	RecordFetch(ev FetchEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordRequest(RequestEvent) error { return nil }
func (NopSink) RecordFetch(FetchEvent) error     { return nil }
