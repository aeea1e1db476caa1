package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelka/schedbot/core/metrics"
	"github.com/otelka/schedbot/core/schedule"
	"github.com/otelka/schedbot/infra/logger"
)

type fakeService struct {
	lastGroup string
	lastDate  string
	reply     string
	err       error
}

func (f *fakeService) ScheduleText(_ context.Context, group, date string) (string, error) {
	f.lastGroup = group
	f.lastDate = date
	return f.reply, f.err
}

type captureSink struct {
	events []metrics.RequestEvent
}

func (c *captureSink) RecordRequest(ev metrics.RequestEvent) error {
	c.events = append(c.events, ev)
	return nil
}

func newTestRouter(t *testing.T, svc ScheduleService, sink metrics.Sink) *Router {
	t.Helper()
	r, err := NewRouter(Config{Group: "ИГ25-01Б-ОМ", Timezone: "UTC"}, svc, sink, logger.NopLogger{})
	require.NoError(t, err)
	// 2026-02-01 12:00 UTC.
	r.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestHandleStart(t *testing.T) {
	r := newTestRouter(t, &fakeService{}, nil)
	got := r.Handle(context.Background(), Message{Chat: "1", Text: "/start"})
	assert.Contains(t, got, "/today")
	assert.Contains(t, got, "/day 30.01")
}

func TestHandleTodayTomorrow(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	r := newTestRouter(t, svc, nil)

	r.Handle(context.Background(), Message{Chat: "1", Text: "/today"})
	assert.Equal(t, "01.02", svc.lastDate)

	r.Handle(context.Background(), Message{Chat: "1", Text: "/tomorrow"})
	assert.Equal(t, "02.02", svc.lastDate)
	assert.Equal(t, "ИГ25-01Б-ОМ", svc.lastGroup)
}

func TestHandleDay(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	r := newTestRouter(t, svc, nil)

	got := r.Handle(context.Background(), Message{Chat: "1", Text: "/day 30.1"})
	assert.Equal(t, "ok", got)
	assert.Equal(t, "30.01", svc.lastDate)

	got = r.Handle(context.Background(), Message{Chat: "1", Text: "/day завтра"})
	assert.Contains(t, got, "Формат даты")

	// Bare /day falls back to today.
	r.Handle(context.Background(), Message{Chat: "1", Text: "/day"})
	assert.Equal(t, "01.02", svc.lastDate)
}

func TestHandleFreeText(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	r := newTestRouter(t, svc, nil)

	got := r.Handle(context.Background(), Message{Chat: "1", Text: "день 30.01"})
	assert.Equal(t, "ok", got)
	assert.Equal(t, "30.01", svc.lastDate)

	assert.Empty(t, r.Handle(context.Background(), Message{Chat: "1", Text: "привет"}))
	assert.Empty(t, r.Handle(context.Background(), Message{Chat: "1", Text: "/unknown"}))
	assert.Empty(t, r.Handle(context.Background(), Message{Chat: "1", Text: ""}))
}

func TestHandleCommandWithBotSuffix(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	r := newTestRouter(t, svc, nil)
	got := r.Handle(context.Background(), Message{Chat: "1", Text: "/today@otelka_bot"})
	assert.Equal(t, "ok", got)
}

func TestHandleErrorReplies(t *testing.T) {
	svc := &fakeService{err: &schedule.GroupNotFoundError{
		Group:    "ИГ25-01Б-ОМ",
		Siblings: []string{"ИГ25-02Б-ОМ"},
		Scanned:  12,
	}}
	sink := &captureSink{}
	r := newTestRouter(t, svc, sink)

	got := r.Handle(context.Background(), Message{Chat: "1", Text: "/today"})
	assert.Contains(t, got, "ИГ25-02Б-ОМ")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "group_not_found", sink.events[0].Outcome)
	assert.Equal(t, "/today", sink.events[0].Command)

	svc.err = &schedule.HeaderNotFoundError{DateLabel: "дата", TimeLabel: "часы", Scanned: 60}
	got = r.Handle(context.Background(), Message{Chat: "1", Text: "/today"})
	assert.Contains(t, got, "заголовки")
	assert.Equal(t, "header_not_found", sink.events[1].Outcome)
}

func TestHandleRecordsOK(t *testing.T) {
	sink := &captureSink{}
	r := newTestRouter(t, &fakeService{reply: "ok"}, sink)
	r.Handle(context.Background(), Message{Chat: "1", Text: "/today"})
	require.Len(t, sink.events, 1)
	assert.Equal(t, "ok", sink.events[0].Outcome)
	assert.Equal(t, "01.02", sink.events[0].Date)
}
