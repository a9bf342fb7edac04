// Package config handles loading and validating the device inventory configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with INVENTORY_* environment variables
//   - Validation of required fields
//   - Default value handling
//
// Secrets (MQTT password, InfluxDB token, JWT secret) should be supplied via
// environment variables rather than committed to the config file.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Site.Name)
package config
