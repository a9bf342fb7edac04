// Device Inventory - tracks devices through the AVAILABLE, IN_USE and
// INACTIVE states and serves them over a REST and WebSocket API.
//
// Change events are optionally published to MQTT, counted in InfluxDB and
// the API advertised over mDNS, each switched on in configs/config.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/device-inventory/internal/api"
	"github.com/nerrad567/device-inventory/internal/auth"
	"github.com/nerrad567/device-inventory/internal/device"
	"github.com/nerrad567/device-inventory/internal/discovery"
	"github.com/nerrad567/device-inventory/internal/events"
	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
	"github.com/nerrad567/device-inventory/internal/infrastructure/database"
	"github.com/nerrad567/device-inventory/internal/infrastructure/influxdb"
	"github.com/nerrad567/device-inventory/internal/infrastructure/logging"
	"github.com/nerrad567/device-inventory/internal/infrastructure/mqtt"
	"github.com/nerrad567/device-inventory/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application and blocks until ctx is cancelled. Deferred
// cleanups run in reverse start order.
func run(ctx context.Context) error { //nolint:gocognit,gocyclo // linear startup sequence
	log := logging.Default()
	log.Info("starting device inventory",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath, "site", cfg.Site.ID)

	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	if migrateErr := db.Migrate(ctx, migrations.Source()); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database ready", "path", cfg.Database.Path)

	manager := device.NewManager(device.NewSQLiteRepository(db.DB))
	manager.SetLogger(log)

	fanout := events.NewFanout()
	fanout.SetLogger(log)
	manager.SetNotifier(fanout)

	checks := map[string]api.HealthChecker{"database": db}

	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := connectMQTT(cfg, log)
		if mqttErr != nil {
			return mqttErr
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()

		codec, codecErr := events.NewCodec(cfg.Events.Encoding)
		if codecErr != nil {
			return fmt.Errorf("event codec: %w", codecErr)
		}
		notifier := events.NewMQTTNotifier(mqttClient, mqttClient.Topics(), codec)
		notifier.SetLogger(log)
		fanout.Add(notifier)
		checks["mqtt"] = mqttClient
	} else {
		log.Info("MQTT disabled")
	}

	if cfg.InfluxDB.Enabled {
		influxClient, influxErr := influxdb.Connect(ctx, cfg.InfluxDB)
		if influxErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", influxErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)

		fanout.Add(events.NewMetricsNotifier(influxClient))
		checks["influxdb"] = influxClient
	} else {
		log.Info("InfluxDB disabled")
	}

	var authenticator *auth.Authenticator
	if cfg.Security.Auth.Enabled {
		authenticator, err = auth.NewAuthenticator(cfg.Security.Auth.Users)
		if err != nil {
			return fmt.Errorf("loading users: %w", err)
		}
		log.Info("authentication enabled", "users", len(cfg.Security.Auth.Users))
	} else {
		log.Warn("authentication disabled, every caller is an operator")
	}

	server, err := api.New(api.Deps{
		Config:        cfg.API,
		WS:            cfg.WebSocket,
		Security:      cfg.Security,
		Logger:        log,
		Manager:       manager,
		Authenticator: authenticator,
		Checks:        checks,
		Version:       version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	fanout.Add(server.Hub())

	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error stopping API server", "error", closeErr)
		}
	}()
	log.Info("API server listening", "addr", server.Addr())

	if cfg.Discovery.Enabled {
		advertiser, advErr := startDiscovery(cfg, server)
		if advErr != nil {
			log.Warn("mDNS advertisement failed, continuing without it", "error", advErr)
		} else {
			defer advertiser.Stop()
			log.Info("advertising over mDNS", "service", cfg.Discovery.Service)
		}
	}

	log.Info("initialisation complete, waiting for shutdown signal", "notifiers", fanout.Len())
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	return nil
}

func connectMQTT(cfg *config.Config, log *logging.Logger) (*mqtt.Client, error) {
	client, err := mqtt.Connect(cfg.MQTT, mqtt.NewTopics(cfg.Events.TopicPrefix))
	if err != nil {
		return nil, fmt.Errorf("connecting to MQTT: %w", err)
	}
	client.SetLogger(log)
	client.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	client.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)
	return client, nil
}

func startDiscovery(cfg *config.Config, server *api.Server) (*discovery.Advertiser, error) {
	port, err := server.Port()
	if err != nil {
		return nil, err
	}

	name := cfg.Site.Name
	if name == "" {
		name = cfg.Site.ID
	}

	advertiser := discovery.NewAdvertiser(cfg.Discovery)
	if err := advertiser.Start(discovery.ServiceInfo{
		Instance: name,
		Port:     port,
		Version:  version,
		Path:     discovery.DefaultPath,
		SiteID:   cfg.Site.ID,
	}); err != nil {
		return nil, err
	}
	return advertiser, nil
}

// getConfigPath returns INVENTORY_CONFIG if set, otherwise the default path.
func getConfigPath() string {
	if path := os.Getenv("INVENTORY_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
