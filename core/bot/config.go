package bot

import "fmt"

const defaultGreeting = "Привет! Я твой виртуальный помощник ОТЕЛЬКА 🩵. Давай помогу с расписанием!\n\n" +
	"Команды:\n" +
	"/today — расписание на сегодня\n" +
	"/tomorrow — расписание на завтра\n" +
	"/day 30.01 — расписание на дату (ДД.ММ)\n\n" +
	"Можно и текстом: 30.01 или «день 30.01»"

// Config defines the bot's group, timezone and greeting.
type Config struct {
	// Group is the schedule group all queries are answered for.
	Group string `json:"group"`
	// Timezone resolves "today" and "tomorrow".
	Timezone string `json:"timezone"`
	// Greeting overrides the /start reply.
	Greeting string `json:"greeting"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Timezone == "" {
		c.Timezone = "Asia/Krasnoyarsk"
	}
	if c.Greeting == "" {
		c.Greeting = defaultGreeting
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Group == "" {
		return fmt.Errorf("bot group is required")
	}
	return nil
}
