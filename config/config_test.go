package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `sheet:
  url: "https://docs.example.com/pub?output=csv"
  cache_seconds: 30
bot:
  group: "ИГ25-01Б-ОМ"
  timezone: "Asia/Krasnoyarsk"
mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
  client_id: "otelka"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9100"
schedule:
  glue_tags: ["пр", "лек", "лаб"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"sheet.url", cfg.Sheet.URL, "https://docs.example.com/pub?output=csv"},
		{"sheet.cache_seconds", cfg.Sheet.CacheSeconds, 30},
		{"sheet.timeout_default", cfg.Sheet.TimeoutSeconds, 25},
		{"bot.group", cfg.Bot.Group, "ИГ25-01Б-ОМ"},
		{"bot.timezone", cfg.Bot.Timezone, "Asia/Krasnoyarsk"},
		{"mqtt.broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt.inbound_default", cfg.MQTT.InboundTopic, "schedbot/inbound"},
		{"metrics.addr", cfg.Metrics.PrometheusAddr, ":9100"},
		{"schedule.glue_tags", len(cfg.Schedule.GlueTags), 3},
		{"schedule.date_header_default", cfg.Schedule.DateHeader, "дата"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `sheet:
  url: "https://docs.example.com/pub?output=csv"
bot:
  group: "ИГ25-01Б-ОМ"
`)
	t.Setenv("SB_BOT__GROUP", "ИГ25-02Б-ОМ")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Bot.Group != "ИГ25-02Б-ОМ" {
		t.Fatalf("group = %q, want env override", cfg.Bot.Group)
	}
}

func TestLoadMissingGroup(t *testing.T) {
	path := writeConfig(t, `sheet:
  url: "https://docs.example.com/pub?output=csv"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for missing group")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected unsupported-format error")
	}
}
