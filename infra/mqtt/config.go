package mqtt

import "fmt"

// Config defines the connection to the chat-gateway broker. The gateway
// bridges the actual messenger to MQTT: inbound user messages arrive on one
// topic, replies go out under a per-chat topic.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	// InboundTopic carries JSON-encoded bot.Message payloads from the gateway.
	InboundTopic string `json:"inbound_topic"`
	// ReplyTopic is the prefix replies are published under: <ReplyTopic>/<chat>.
	ReplyTopic string `json:"reply_topic"`
	QoS        byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "schedbot"
	}
	if c.InboundTopic == "" {
		c.InboundTopic = "schedbot/inbound"
	}
	if c.ReplyTopic == "" {
		c.ReplyTopic = "schedbot/reply"
	}
}

// Validate checks mandatory fields when the transport is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker is required")
	}
	if c.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2")
	}
	return nil
}
