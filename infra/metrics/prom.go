package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/otelka/schedbot/core/metrics"
)

// PromSink records request and fetch events as Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	fetches  *prometheus.CounterVec
}

// NewPromSink registers the bot's collectors on the provided registerer. If
// reg is nil, the default registerer is used. Already registered collectors
// are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_requests_total",
		Help: "Total number of handled schedule requests",
	}, []string{"command", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_request_duration_seconds",
		Help:    "Time spent answering one schedule request",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sheet_fetch_total",
		Help: "Total number of table-source accesses",
	}, []string{"cache_hit", "error"})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fetches); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fetches = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{requests: requests, duration: duration, fetches: fetches}, nil
}

// RecordRequest counts the request and observes its duration.
func (s *PromSink) RecordRequest(ev coremetrics.RequestEvent) error {
	s.requests.WithLabelValues(ev.Command, ev.Outcome).Inc()
	s.duration.WithLabelValues(ev.Command).Observe(ev.Duration.Seconds())
	return nil
}

// RecordFetch counts one table-source access.
func (s *PromSink) RecordFetch(ev coremetrics.FetchEvent) error {
	s.fetches.WithLabelValues(strconv.FormatBool(ev.CacheHit), strconv.FormatBool(ev.Err)).Inc()
	return nil
}
