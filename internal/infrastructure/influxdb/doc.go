// Package influxdb records inventory activity as time series.
//
// Every successful create, update and delete becomes one point:
//
//	device_operations,operation=<created|updated|deleted>,state=<STATE> count=1i <ts>
//
// Grafana or Flux can then chart churn per state without touching SQLite.
//
// # Usage
//
//	client, err := influxdb.Connect(ctx, cfg.InfluxDB)
//	if errors.Is(err, influxdb.ErrDisabled) {
//	    // run without metrics
//	}
//	defer client.Close()
//
//	client.WriteOperation("created", "AVAILABLE", time.Now())
//
// # Thread Safety
//
// All methods are safe for concurrent use. Writes are batched according to
// batch_size and flush_interval; failures arrive via SetOnError.
package influxdb
