// Package mqtt publishes inventory change events to an MQTT broker.
//
// It wraps the Eclipse Paho client with:
//   - Connection tracking and HealthCheck for the readiness probe
//   - A retained status topic ({prefix}/system/status) with Last Will
//   - Subscription restore after auto-reconnect
//   - Panic recovery around message handlers
//
// Topic layout:
//
//	{prefix}/device/{id}/{created|updated|deleted}
//	{prefix}/system/status
//
// Usage:
//
//	client, err := mqtt.Connect(cfg.MQTT, mqtt.NewTopics(cfg.Events.TopicPrefix))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.PublishDefault(client.Topics().DeviceEvent(id, "created"), payload)
package mqtt
