package device

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates an in-memory SQLite database with the devices table.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A second pooled connection would see a different :memory: database.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE devices (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			state TEXT NOT NULL CHECK (state IN ('AVAILABLE', 'IN_USE', 'INACTIVE')),
			created_at TEXT NOT NULL
		) STRICT;
		CREATE INDEX idx_devices_brand ON devices(brand);
		CREATE INDEX idx_devices_state ON devices(state);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// testDevice creates a device for testing.
func testDevice(name, brand string, state DeviceState) *Device {
	return &Device{
		Name:  name,
		Brand: brand,
		State: state,
	}
}

func TestSQLiteRepository_Insert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	t.Run("assigns id and created_at", func(t *testing.T) {
		got, err := repo.Insert(ctx, testDevice("Phone X", "Samsung", StateAvailable))
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if got.ID == "" {
			t.Error("ID is empty, want generated UUID")
		}
		if got.CreatedAt.IsZero() {
			t.Error("CreatedAt is zero, want set")
		}

		stored, err := repo.Get(ctx, got.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !stored.CreatedAt.Equal(got.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", stored.CreatedAt, got.CreatedAt)
		}
		if stored.Name != "Phone X" || stored.Brand != "Samsung" || stored.State != StateAvailable {
			t.Errorf("stored = %+v, want Phone X/Samsung/AVAILABLE", stored)
		}
	})

	t.Run("does not modify the caller's device", func(t *testing.T) {
		in := testDevice("Tablet", "Apple", StateInactive)
		if _, err := repo.Insert(ctx, in); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if in.ID != "" {
			t.Errorf("input ID = %q, want empty", in.ID)
		}
	})

	t.Run("returns error for duplicate ID", func(t *testing.T) {
		first := testDevice("First", "Acme", StateAvailable)
		first.ID = "dev-duplicate"
		if _, err := repo.Insert(ctx, first); err != nil {
			t.Fatalf("first Insert() error = %v", err)
		}

		second := testDevice("Second", "Acme", StateAvailable)
		second.ID = "dev-duplicate"
		_, err := repo.Insert(ctx, second)
		if !errors.Is(err, ErrDeviceExists) {
			t.Errorf("Insert() error = %v, want ErrDeviceExists", err)
		}
	})

	t.Run("schema rejects unknown state", func(t *testing.T) {
		_, err := repo.Insert(ctx, testDevice("Bad", "Acme", DeviceState("BROKEN")))
		if err == nil {
			t.Error("Insert() with invalid state should fail the CHECK constraint")
		}
	})
}

func TestSQLiteRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "nonexistent")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Get() error = %v, want ErrDeviceNotFound", err)
	}
}

func TestSQLiteRepository_Lists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	// Names chosen so alphabetical order differs from insertion order.
	fixtures := []*Device{
		testDevice("Zeta", "Samsung", StateAvailable),
		testDevice("Alpha", "Apple", StateInUse),
		testDevice("Mid", "Samsung", StateInUse),
		testDevice("Beta", "samsung", StateInactive),
	}
	for _, d := range fixtures {
		if _, err := repo.Insert(ctx, d); err != nil {
			t.Fatalf("Insert(%s) error = %v", d.Name, err)
		}
	}

	names := func(devices []Device) []string {
		out := make([]string, len(devices))
		for i, d := range devices {
			out[i] = d.Name
		}
		return out
	}

	tests := []struct {
		name string
		list func() ([]Device, error)
		want []string
	}{
		{"all in insertion order", func() ([]Device, error) { return repo.ListAll(ctx) }, []string{"Zeta", "Alpha", "Mid", "Beta"}},
		{"brand is case sensitive", func() ([]Device, error) { return repo.ListByBrand(ctx, "Samsung") }, []string{"Zeta", "Mid"}},
		{"unknown brand", func() ([]Device, error) { return repo.ListByBrand(ctx, "Nokia") }, []string{}},
		{"by state", func() ([]Device, error) { return repo.ListByState(ctx, StateInUse) }, []string{"Alpha", "Mid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list()
			if err != nil {
				t.Fatalf("list error = %v", err)
			}
			if got == nil {
				t.Fatal("list returned nil slice, want empty slice")
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotNames, tt.want)
			}
			for i := range tt.want {
				if gotNames[i] != tt.want[i] {
					t.Errorf("got %v, want %v", gotNames, tt.want)
					break
				}
			}
		})
	}
}

func TestSQLiteRepository_Replace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := repo.Insert(ctx, testDevice("Phone", "Nokia", StateAvailable))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	t.Run("keeps created_at", func(t *testing.T) {
		next := *created
		next.Name = "Phone 2"
		next.State = StateInUse
		next.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

		got, err := repo.Replace(ctx, &next)
		if err != nil {
			t.Fatalf("Replace() error = %v", err)
		}
		if got.Name != "Phone 2" || got.State != StateInUse {
			t.Errorf("got %+v, want name Phone 2 and IN_USE", got)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
		}
	})

	t.Run("missing device", func(t *testing.T) {
		_, err := repo.Replace(ctx, &Device{ID: "missing", Name: "x", Brand: "y", State: StateAvailable})
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Replace() error = %v, want ErrDeviceNotFound", err)
		}
	})
}

func TestSQLiteRepository_Remove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := repo.Insert(ctx, testDevice("Phone", "Nokia", StateAvailable))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Remove(ctx, created); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Get() after Remove error = %v, want ErrDeviceNotFound", err)
	}
	if err := repo.Remove(ctx, created); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("second Remove() error = %v, want ErrDeviceNotFound", err)
	}
}
