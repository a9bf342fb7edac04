package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLiteRepository implements Directory using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with migrations applied.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectDevices = `
		SELECT id, name, brand, state, created_at
		FROM devices`

// Get retrieves a device by its unique identifier.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Device, error) {
	row := r.db.QueryRowContext(ctx, selectDevices+` WHERE id = ?`, id)
	d, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device by id: %w", err)
	}
	return d, nil
}

// ListAll retrieves all devices in insertion order.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]Device, error) {
	return r.queryDevices(ctx, selectDevices+` ORDER BY seq`)
}

// ListByBrand retrieves devices with an exact brand match.
func (r *SQLiteRepository) ListByBrand(ctx context.Context, brand string) ([]Device, error) {
	return r.queryDevices(ctx, selectDevices+` WHERE brand = ? ORDER BY seq`, brand)
}

// ListByState retrieves devices in the given state.
func (r *SQLiteRepository) ListByState(ctx context.Context, state DeviceState) ([]Device, error) {
	return r.queryDevices(ctx, selectDevices+` WHERE state = ? ORDER BY seq`, string(state))
}

// Insert stores a new device, assigning an ID and creation time if unset.
func (r *SQLiteRepository) Insert(ctx context.Context, d *Device) (*Device, error) {
	stored := d.Clone()
	if stored.ID == "" {
		stored.ID = GenerateID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	query := `
		INSERT INTO devices (id, name, brand, state, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		stored.ID,
		stored.Name,
		stored.Brand,
		string(stored.State),
		stored.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrDeviceExists
		}
		return nil, fmt.Errorf("inserting device: %w", err)
	}

	return stored, nil
}

// Replace overwrites the mutable columns of an existing device.
// created_at is write-once and never appears in the statement.
func (r *SQLiteRepository) Replace(ctx context.Context, d *Device) (*Device, error) {
	query := `
		UPDATE devices SET name = ?, brand = ?, state = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		d.Name,
		d.Brand,
		string(d.State),
		d.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating device: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrDeviceNotFound
	}

	return r.Get(ctx, d.ID)
}

// Remove deletes a device by ID.
func (r *SQLiteRepository) Remove(ctx context.Context, d *Device) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", d.ID)
	if err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// queryDevices executes a query and returns a slice of devices.
func (r *SQLiteRepository) queryDevices(ctx context.Context, query string, args ...any) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	devices := []Device{}
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}

	return devices, nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(scanner rowScanner) (*Device, error) {
	var d Device
	var state, createdAt string

	if err := scanner.Scan(&d.ID, &d.Name, &d.Brand, &state, &createdAt); err != nil {
		return nil, err
	}

	d.State = DeviceState(state)

	var err error
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &d, nil
}

// isUniqueConstraintError checks if an error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
