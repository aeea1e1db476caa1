package metrics

import coremetrics "github.com/otelka/schedbot/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRequest forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRequest(ev coremetrics.RequestEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRequest(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFetch forwards fetch events to the sinks that track them.
func (m *MultiSink) RecordFetch(ev coremetrics.FetchEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FetchRecorder); ok {
			if err := rec.RecordFetch(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
