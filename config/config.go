package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/otelka/schedbot/core/bot"
	"github.com/otelka/schedbot/core/metrics"
	"github.com/otelka/schedbot/core/schedule"
	"github.com/otelka/schedbot/infra/mqtt"
	"github.com/otelka/schedbot/infra/sheet"
)

// Config aggregates the per-section settings.
type Config struct {
	Sheet    sheet.Config        `json:"sheet"`
	Bot      bot.Config          `json:"bot"`
	MQTT     mqtt.Config         `json:"mqtt"`
	Metrics  metrics.Config      `json:"metrics"`
	Schedule schedule.Heuristics `json:"schedule"`
}

// Load reads the configuration file (yaml or json by extension), applies
// SB_-prefixed environment overrides, fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides: SB_BOT__GROUP -> bot.group.
	if err := k.Load(env.Provider("SB_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sb_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}

	cfg.Sheet.SetDefaults()
	cfg.Bot.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Schedule.SetDefaults()

	if err := cfg.Sheet.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Bot.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Schedule.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
