// Package mqtt implements the chat transport over an MQTT broker using
// Eclipse Paho. Inbound messages are fanned out on the event bus; replies are
// published under a per-chat topic.
package mqtt

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/otelka/schedbot/core/bot"
	"github.com/otelka/schedbot/core/logger"
	"github.com/otelka/schedbot/internal/eventbus"
)

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Transport connects to the broker, forwards inbound messages onto the bus
// and publishes replies.
type Transport struct {
	cli pahoClient
	cfg Config
	bus *eventbus.Bus[bot.Message]
	log logger.Logger
}

// NewTransport connects to the broker and subscribes to the inbound topic.
func NewTransport(cfg Config, bus *eventbus.Bus[bot.Message], log logger.Logger) (*Transport, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Transport{cfg: cfg, bus: bus, log: log}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(cfg.InboundTopic, cfg.QoS, t.onMessage); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe %s: %v", cfg.InboundTopic, token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, token.Error())
	}
	t.cli = cli
	return t, nil
}

func (t *Transport) onMessage(_ paho.Client, m paho.Message) {
	var msg bot.Message
	if err := json.Unmarshal(m.Payload(), &msg); err != nil {
		t.log.Warnf("drop malformed inbound payload: %v", err)
		return
	}
	if msg.Chat == "" {
		t.log.Warnf("drop inbound message without chat id")
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	t.bus.Publish(msg)
}

// Send publishes the reply under the per-chat topic.
func (t *Transport) Send(reply bot.Reply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("encode reply: %w", err)
	}
	topic := t.cfg.ReplyTopic + "/" + reply.Chat
	token := t.cli.Publish(topic, t.cfg.QoS, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (t *Transport) Close() {
	if t.cli != nil && t.cli.IsConnected() {
		t.cli.Disconnect(250)
	}
}
