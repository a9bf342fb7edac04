// inventoryctl is the operator console for the device inventory. It opens
// the inventory database directly and runs shell commands against it,
// either from its arguments or interactively.
//
// Usage:
//
//	inventoryctl [-config path] [-memory] [command args...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nerrad567/device-inventory/internal/device"
	"github.com/nerrad567/device-inventory/internal/discovery"
	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
	"github.com/nerrad567/device-inventory/internal/infrastructure/database"
	"github.com/nerrad567/device-inventory/internal/infrastructure/logging"
	"github.com/nerrad567/device-inventory/internal/shell"
	"github.com/nerrad567/device-inventory/migrations"
)

const (
	defaultConfigPath = "configs/config.yaml"
	browseTimeout     = 3 * time.Second
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inventoryctl", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", getConfigPath(), "path to the configuration file")
	memory := fs.Bool("memory", false, "keep devices in memory for this run only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *memory)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, "ctl", os.Stderr)

	var dir device.Directory
	if *memory {
		dir = device.NewMemoryRepository()
	} else {
		db, openErr := openDatabase(ctx, cfg.Database)
		if openErr != nil {
			return openErr
		}
		defer db.Close() //nolint:errcheck // process exit

		dir = device.NewSQLiteRepository(db.DB)
	}

	mgr := device.NewManager(dir)
	mgr.SetLogger(logger)

	sh := shell.New(mgr, stdout)
	sh.SetBrowser(func(ctx context.Context) ([]discovery.Instance, error) {
		return discovery.Browse(ctx, cfg.Discovery, browseTimeout)
	})

	if fs.NArg() > 0 {
		_, err := sh.Execute(ctx, joinArgs(fs.Args()))
		return err
	}
	return sh.Run(ctx)
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Path,
		WALMode:     cfg.WALMode,
		BusyTimeout: cfg.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Migrate(ctx, migrations.Source()); err != nil {
		db.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// loadConfig reads the config file. With -memory a missing file is fine and
// defaults apply.
func loadConfig(path string, memory bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if memory && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, fmt.Errorf("loading config: %w", err)
}

// joinArgs re-quotes arguments so the shell tokeniser sees them unchanged.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t'\"\\") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}

func getConfigPath() string {
	if path := os.Getenv("INVENTORY_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
