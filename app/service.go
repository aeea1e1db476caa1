// Package app assembles the configured service: table source, extractor,
// command router, chat transport, metrics sinks and the liveness server.
package app

import (
	"context"
	"fmt"

	"github.com/otelka/schedbot/config"
	"github.com/otelka/schedbot/core/bot"
	coremetrics "github.com/otelka/schedbot/core/metrics"
	"github.com/otelka/schedbot/core/schedule"
	"github.com/otelka/schedbot/infra/logger"
	"github.com/otelka/schedbot/infra/metrics"
	"github.com/otelka/schedbot/infra/mqtt"
	"github.com/otelka/schedbot/infra/sheet"
	"github.com/otelka/schedbot/internal/eventbus"
)

// Sender delivers a reply back to the chat it came from.
type Sender interface {
	Send(reply bot.Reply) error
}

// Service owns the request path: inbound message -> router -> schedule text
// -> reply.
type Service struct {
	router    *bot.Router
	source    sheet.Source
	extractor *schedule.Extractor
	bus       *eventbus.Bus[bot.Message]
	sender    Sender
	closeFn   func()
	log       logger.Logger

	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var source sheet.Source
	if cfg.Sheet.XLSXPath != "" {
		source = sheet.NewXLSXSource(cfg.Sheet.XLSXPath)
	} else {
		source = sheet.NewFetcher(cfg.Sheet, sink, logger.New("fetcher"))
	}

	svc := &Service{
		source:      source,
		extractor:   schedule.New(cfg.Schedule),
		bus:         eventbus.New[bot.Message](),
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}

	router, err := bot.NewRouter(cfg.Bot, svc, sink, logger.New("router"))
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	svc.router = router

	if cfg.MQTT.Enabled {
		transport, err := mqtt.NewTransport(cfg.MQTT, svc.bus, logger.New("mqtt"))
		if err != nil {
			return nil, fmt.Errorf("mqtt transport: %w", err)
		}
		svc.sender = transport
		svc.closeFn = transport.Close
	}
	return svc, nil
}

// ScheduleText implements bot.ScheduleService: fetch the table, extract the
// group's entries for the date and format the reply.
func (s *Service) ScheduleText(ctx context.Context, group, date string) (string, error) {
	text, err := s.source.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch table: %w", err)
	}
	return s.extractor.ScheduleText(text, group, date)
}

// Run serves inbound messages until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartServer(ctx, s.promAddr, s.log); err != nil {
				s.log.Errorf("metrics server: %v", err)
			}
		}()
	}

	messages := s.bus.Subscribe()
	s.log.Infof("service started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.handle(ctx, msg)
		}
	}
}

func (s *Service) handle(ctx context.Context, msg bot.Message) {
	reply := s.router.Handle(ctx, msg)
	if reply == "" {
		return
	}
	if s.sender == nil {
		s.log.Warnf("no transport configured, dropping reply for chat %s", msg.Chat)
		return
	}
	if err := s.sender.Send(bot.Reply{Chat: msg.Chat, Text: reply}); err != nil {
		s.log.Errorf("send reply to chat %s: %v", msg.Chat, err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}
