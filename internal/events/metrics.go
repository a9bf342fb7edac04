package events

import (
	"context"
	"time"

	"github.com/nerrad567/device-inventory/internal/device"
)

// OperationWriter is the part of influxdb.Client the recorder needs.
type OperationWriter interface {
	WriteOperation(operation, state string, at time.Time)
}

// MetricsNotifier counts committed operations in a time-series store.
type MetricsNotifier struct {
	writer OperationWriter
}

// NewMetricsNotifier builds a notifier writing through w.
func NewMetricsNotifier(w OperationWriter) *MetricsNotifier {
	return &MetricsNotifier{writer: w}
}

// DeviceChanged implements device.Notifier.
func (n *MetricsNotifier) DeviceChanged(_ context.Context, change device.Change) {
	n.writer.WriteOperation(string(change.Type), string(change.Device.State), change.At)
}
