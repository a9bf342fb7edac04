package events

import (
	"context"

	"github.com/nerrad567/device-inventory/internal/device"
	"github.com/nerrad567/device-inventory/internal/infrastructure/mqtt"
)

// Publisher is the part of mqtt.Client the MQTT notifier needs.
type Publisher interface {
	PublishDefault(topic string, payload []byte) error
}

// MQTTNotifier publishes each change to {prefix}/device/{id}/{type}.
type MQTTNotifier struct {
	publisher Publisher
	topics    mqtt.Topics
	codec     Codec
	logger    Logger
}

// NewMQTTNotifier builds a notifier publishing through p.
func NewMQTTNotifier(p Publisher, topics mqtt.Topics, codec Codec) *MQTTNotifier {
	return &MQTTNotifier{
		publisher: p,
		topics:    topics,
		codec:     codec,
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for encode and publish failures.
func (n *MQTTNotifier) SetLogger(logger Logger) {
	n.logger = logger
}

// DeviceChanged implements device.Notifier. Failures are logged only.
func (n *MQTTNotifier) DeviceChanged(_ context.Context, change device.Change) {
	payload, err := n.codec.Encode(change)
	if err != nil {
		n.logger.Error("encoding device change", "device_id", change.Device.ID, "error", err)
		return
	}

	topic := n.topics.DeviceEvent(change.Device.ID, string(change.Type))
	if err := n.publisher.PublishDefault(topic, payload); err != nil {
		n.logger.Warn("publishing device change", "topic", topic, "error", err)
	}
}
