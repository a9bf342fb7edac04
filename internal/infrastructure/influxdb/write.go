package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// MeasurementDeviceOperations holds one point per successful inventory write.
const MeasurementDeviceOperations = "device_operations"

// WriteOperation records a single inventory operation (created, updated,
// deleted) tagged with the device's resulting state. The write is batched
// and non-blocking.
func (c *Client) WriteOperation(operation, state string, at time.Time) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(operationPoint(operation, state, at))
}

func operationPoint(operation, state string, at time.Time) *write.Point {
	return write.NewPoint(
		MeasurementDeviceOperations,
		map[string]string{
			"operation": operation,
			"state":     state,
		},
		map[string]interface{}{
			"count": int64(1),
		},
		at,
	)
}
