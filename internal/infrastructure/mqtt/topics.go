package mqtt

import "strings"

// DefaultTopicPrefix roots every topic when no prefix is configured.
const DefaultTopicPrefix = "inventory"

// Topics builds the inventory's MQTT topic names under a common prefix.
//
//	topics := mqtt.NewTopics("inventory")
//	topics.DeviceEvent("3f2c...", "updated")
//	// Returns: "inventory/device/3f2c.../updated"
type Topics struct {
	Prefix string
}

// NewTopics returns a builder rooted at prefix. Leading and trailing
// slashes are stripped; an empty prefix falls back to DefaultTopicPrefix.
func NewTopics(prefix string) Topics {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	return Topics{Prefix: prefix}
}

func (t Topics) root() string {
	if t.Prefix == "" {
		return DefaultTopicPrefix
	}
	return t.Prefix
}

// DeviceEvent returns the topic a device change is published on.
//
// Example: inventory/device/{id}/created
func (t Topics) DeviceEvent(deviceID, changeType string) string {
	return t.root() + "/device/" + deviceID + "/" + changeType
}

// AllDeviceEvents matches every device change.
func (t Topics) AllDeviceEvents() string {
	return t.root() + "/device/+/+"
}

// DeviceEvents matches every change of a single device.
func (t Topics) DeviceEvents(deviceID string) string {
	return t.root() + "/device/" + deviceID + "/+"
}

// SystemStatus carries the retained online/offline status and the LWT.
func (t Topics) SystemStatus() string {
	return t.root() + "/system/status"
}

// All matches every topic under the prefix.
func (t Topics) All() string {
	return t.root() + "/#"
}
