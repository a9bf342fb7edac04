package database

import (
	"context"
	"testing"
	"testing/fstest"
)

func testSource() Source {
	return Source{
		Dir: "sql",
		FS: fstest.MapFS{
			"sql/20260101_000000_widgets.up.sql":   {Data: []byte("CREATE TABLE widgets (id INTEGER PRIMARY KEY);")},
			"sql/20260101_000000_widgets.down.sql": {Data: []byte("DROP TABLE widgets;")},
			"sql/20260102_000000_gadgets.up.sql":   {Data: []byte("CREATE TABLE gadgets (id INTEGER PRIMARY KEY);")},
			"sql/20260102_000000_gadgets.down.sql": {Data: []byte("DROP TABLE gadgets;")},
			"sql/README.md":                        {Data: []byte("ignored")},
			"sql/20260103_000000_no_direction.sql": {Data: []byte("SELECT 1;")},
		},
	}
}

func tableExists(t *testing.T, db *DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&n)
	if err != nil {
		t.Fatalf("sqlite_master query error: %v", err)
	}
	return n == 1
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	src := testSource()

	if err := db.Migrate(ctx, src); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	for _, table := range []string{"widgets", "gadgets"} {
		if !tableExists(t, db, table) {
			t.Errorf("table %s not created", table)
		}
	}

	applied, pending, err := db.MigrationStatus(ctx, src)
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 2 {
		t.Errorf("expected 2 applied migrations, got %d", len(applied))
	}
	if len(pending) != 0 {
		t.Errorf("expected 0 pending migrations, got %d", len(pending))
	}
	if applied[0].Version != "20260101_000000" {
		t.Errorf("first applied = %s, want 20260101_000000", applied[0].Version)
	}

	if err := db.Migrate(ctx, src); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestMigrateDown(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	src := testSource()

	if err := db.Migrate(ctx, src); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := db.MigrateDown(ctx, src); err != nil {
		t.Fatalf("MigrateDown() error = %v", err)
	}

	if tableExists(t, db, "gadgets") {
		t.Error("latest migration table gadgets should have been dropped")
	}
	if !tableExists(t, db, "widgets") {
		t.Error("earlier migration table widgets should remain")
	}

	applied, pending, err := db.MigrationStatus(ctx, src)
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 1 || len(pending) != 1 {
		t.Errorf("applied=%d pending=%d, want 1 and 1", len(applied), len(pending))
	}
}

func TestMigrate_FailureRollsBackThatMigration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	src := Source{
		Dir: ".",
		FS: fstest.MapFS{
			"20260101_000000_ok.up.sql":     {Data: []byte("CREATE TABLE ok_table (id INTEGER);")},
			"20260102_000000_broken.up.sql": {Data: []byte("CREATE TABLE half (id INTEGER); NOT VALID SQL;")},
		},
	}

	if err := db.Migrate(ctx, src); err == nil {
		t.Fatal("Migrate() error = nil, want failure from broken migration")
	}
	if !tableExists(t, db, "ok_table") {
		t.Error("migration before the failure should stay committed")
	}
	if tableExists(t, db, "half") {
		t.Error("failed migration should be rolled back")
	}
}

func TestMigrateNoMigrations(t *testing.T) {
	db := openTestDB(t)

	if err := db.Migrate(context.Background(), Source{}); err != nil {
		t.Fatalf("Migrate() with no source error = %v", err)
	}
}

func TestMigrationStatus_Pending(t *testing.T) {
	db := openTestDB(t)

	applied, pending, err := db.MigrationStatus(context.Background(), testSource())
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("expected 0 applied, got %d", len(applied))
	}
	if len(pending) != 2 {
		t.Errorf("expected 2 pending, got %d", len(pending))
	}
}

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantVersion string
		wantIsUp    bool
		wantOk      bool
	}{
		{"valid up migration", "20260301_120000_devices.up.sql", "20260301_120000", true, true},
		{"valid down migration", "20260301_120000_devices.down.sql", "20260301_120000", false, true},
		{"not sql file", "readme.txt", "", false, false},
		{"missing direction", "20260301_120000_devices.sql", "", false, false},
		{"invalid format", "invalid.up.sql", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, isUp, ok := parseMigrationFilename(tt.filename)
			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok {
				if version != tt.wantVersion {
					t.Errorf("version = %v, want %v", version, tt.wantVersion)
				}
				if isUp != tt.wantIsUp {
					t.Errorf("isUp = %v, want %v", isUp, tt.wantIsUp)
				}
			}
		})
	}
}

func TestExtractMigrationName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"20260301_120000_devices.up.sql", "devices"},
		{"20260301_120000_devices.down.sql", "devices"},
		{"20260302_090000_add_brand_index.up.sql", "add_brand_index"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := extractMigrationName(tt.filename); got != tt.want {
				t.Errorf("extractMigrationName(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
