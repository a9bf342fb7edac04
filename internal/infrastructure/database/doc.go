// Package database provides SQLite connectivity for the device inventory.
//
// This package manages:
//   - Connection setup with WAL mode and a busy timeout
//   - A single-connection pool matching SQLite's single writer
//   - Versioned schema migrations read from any fs.FS
//   - Health checks
//
// All queries use parameterised statements. The database file is created
// with 0600 permissions.
//
// Usage:
//
//	db, err := database.Open(ctx, database.Config{
//	    Path:        cfg.Database.Path,
//	    WALMode:     cfg.Database.WALMode,
//	    BusyTimeout: cfg.Database.BusyTimeout,
//	})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx, migrations.Source()); err != nil {
//	    return err
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.up.sql with a
// matching .down.sql. Each migration runs in its own transaction.
package database
