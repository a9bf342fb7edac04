// Package events carries committed inventory changes to the outside world.
//
// The device Manager calls a single device.Notifier after each successful
// write. Fanout multiplexes that call to:
//
//	MQTTNotifier    -> {prefix}/device/{id}/{created|updated|deleted}
//	MetricsNotifier -> InfluxDB device_operations
//	api.Hub         -> WebSocket subscribers
//
// Payloads are JSON or canonical CBOR, selected by events.encoding.
// Delivery is best effort: failures are logged and never reach the caller
// of the inventory operation.
package events
