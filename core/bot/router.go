// Package bot routes chat commands to the schedule service and renders the
// error taxonomy as distinguishable user-facing replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/otelka/schedbot/core/logger"
	"github.com/otelka/schedbot/core/metrics"
	"github.com/otelka/schedbot/core/schedule"
)

// ScheduleService answers one schedule query with a ready-to-send message.
type ScheduleService interface {
	ScheduleText(ctx context.Context, group, date string) (string, error)
}

// Router interprets inbound messages: /start, /today, /tomorrow, /day <date>
// and bare free text containing a date token.
type Router struct {
	cfg  Config
	svc  ScheduleService
	sink metrics.Sink
	log  logger.Logger
	loc  *time.Location
	now  func() time.Time
}

// NewRouter builds a Router. The sink may be nil.
func NewRouter(cfg Config, svc ScheduleService, sink metrics.Sink, log logger.Logger) (*Router, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Router{cfg: cfg, svc: svc, sink: sink, log: log, loc: loc, now: time.Now}, nil
}

// Handle routes one inbound message and returns the reply text. An empty
// reply means the message is not addressed to the bot and must not be
// answered.
func (r *Router) Handle(ctx context.Context, msg Message) string {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return ""
	}
	cmd, args := splitCommand(text)
	switch cmd {
	case "/start":
		return r.cfg.Greeting
	case "/today":
		return r.schedule(ctx, msg, "/today", r.dayFromNow(0))
	case "/tomorrow":
		return r.schedule(ctx, msg, "/tomorrow", r.dayFromNow(1))
	case "/day":
		if args == "" {
			return r.schedule(ctx, msg, "/day", r.dayFromNow(0))
		}
		date, ok := schedule.ParseDayMonth(args)
		if !ok {
			return "Формат даты: /day 30.01 (ДД.ММ)"
		}
		return r.schedule(ctx, msg, "/day", date)
	default:
		if strings.HasPrefix(cmd, "/") {
			// Unknown command, likely for another bot in the chat.
			return ""
		}
		date, ok := schedule.ParseDayMonth(text)
		if !ok {
			return ""
		}
		return r.schedule(ctx, msg, "text", date)
	}
}

func (r *Router) schedule(ctx context.Context, msg Message, command, date string) string {
	reqID := uuid.NewString()
	start := r.now()
	text, err := r.svc.ScheduleText(ctx, r.cfg.Group, date)
	elapsed := r.now().Sub(start)

	outcome := outcomeFor(err)
	if recErr := r.sink.RecordRequest(metrics.RequestEvent{
		Command:  command,
		Group:    r.cfg.Group,
		Date:     date,
		Outcome:  outcome,
		Duration: elapsed,
		Time:     start,
	}); recErr != nil {
		r.log.Warnf("record request: %v", recErr)
	}

	if err != nil {
		r.log.Errorf("request %s: %s %s for %q failed: %v", reqID, command, date, r.cfg.Group, err)
		return userMessage(err)
	}
	r.log.Debugw("request served", map[string]any{
		"request_id": reqID,
		"chat":       msg.Chat,
		"command":    command,
		"date":       date,
		"elapsed":    elapsed.String(),
	})
	return text
}

// dayFromNow formats today+offset as DD.MM in the configured timezone.
func (r *Router) dayFromNow(offset int) string {
	return r.now().In(r.loc).AddDate(0, 0, offset).Format("02.01")
}

// splitCommand separates the leading command word from its arguments and
// strips a Telegram-style "@botname" suffix.
func splitCommand(text string) (cmd, args string) {
	cmd, args, _ = strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

func outcomeFor(err error) string {
	var hnf *schedule.HeaderNotFoundError
	var gnf *schedule.GroupNotFoundError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &hnf):
		return "header_not_found"
	case errors.As(err, &gnf):
		return "group_not_found"
	default:
		return "error"
	}
}

// userMessage maps the error taxonomy onto replies the user can act on.
func userMessage(err error) string {
	var hnf *schedule.HeaderNotFoundError
	var gnf *schedule.GroupNotFoundError
	switch {
	case errors.As(err, &hnf):
		return fmt.Sprintf("Не нашла заголовки %q и %q в таблице (проверено %d строк).",
			hnf.DateLabel, hnf.TimeLabel, hnf.Scanned)
	case errors.As(err, &gnf):
		if len(gnf.Siblings) == 0 {
			return fmt.Sprintf("Не нашла колонку группы «%s». Похожих групп в таблице не вижу.", gnf.Group)
		}
		return fmt.Sprintf("Не нашла колонку группы «%s». В таблице вижу: %s",
			gnf.Group, strings.Join(gnf.Siblings, ", "))
	default:
		return fmt.Sprintf("Ошибка чтения расписания: %v", err)
	}
}
