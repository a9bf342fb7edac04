package device

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// recordingNotifier captures committed changes.
type recordingNotifier struct {
	mu      sync.Mutex
	changes []Change
}

func (r *recordingNotifier) DeviceChanged(_ context.Context, c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recordingNotifier) types() []ChangeType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ChangeType, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.Type
	}
	return out
}

// failingDirectory wraps a MemoryRepository and fails writes on demand.
type failingDirectory struct {
	*MemoryRepository
	insertErr  error
	replaceErr error
	removeErr  error
}

func (f *failingDirectory) Insert(ctx context.Context, d *Device) (*Device, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return f.MemoryRepository.Insert(ctx, d)
}

func (f *failingDirectory) Replace(ctx context.Context, d *Device) (*Device, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	return f.MemoryRepository.Replace(ctx, d)
}

func (f *failingDirectory) Remove(ctx context.Context, d *Device) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.MemoryRepository.Remove(ctx, d)
}

func newTestManager(t *testing.T) (*Manager, *MemoryRepository, *recordingNotifier) {
	t.Helper()
	repo := NewMemoryRepository()
	mgr := NewManager(repo)
	n := &recordingNotifier{}
	mgr.SetNotifier(n)
	return mgr, repo, n
}

func TestManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to available", func(t *testing.T) {
		mgr, _, n := newTestManager(t)

		d, err := mgr.Create(ctx, "Phone X", "Samsung", nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if d.State != StateAvailable {
			t.Errorf("State = %q, want AVAILABLE", d.State)
		}
		if d.ID == "" {
			t.Error("ID is empty")
		}
		if got := n.types(); len(got) != 1 || got[0] != ChangeCreated {
			t.Errorf("notifications = %v, want [created]", got)
		}
	})

	t.Run("explicit state is case insensitive", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)

		d, err := mgr.Create(ctx, "Tablet", "Apple", strPtr("in_use"))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if d.State != StateInUse {
			t.Errorf("State = %q, want IN_USE", d.State)
		}
	})

	t.Run("created_at matches later get", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)
		fixed := time.Date(2026, 3, 1, 10, 0, 0, 500, time.UTC)
		mgr.now = func() time.Time { return fixed }

		created, err := mgr.Create(ctx, "Phone X", "Samsung", nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		got, err := mgr.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
		}
		if !got.CreatedAt.Equal(fixed.Truncate(time.Second)) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, fixed.Truncate(time.Second))
		}
	})

	rejections := []struct {
		name    string
		dname   string
		brand   string
		state   *string
		wantErr error
	}{
		{"blank name", "  ", "Samsung", nil, ErrInvalidInput},
		{"blank brand", "Phone", "", nil, ErrInvalidInput},
		{"unknown state", "Phone", "Samsung", strPtr("BROKEN"), ErrInvalidState},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			mgr, repo, n := newTestManager(t)

			_, err := mgr.Create(ctx, tt.dname, tt.brand, tt.state)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
			all, _ := repo.ListAll(ctx)
			if len(all) != 0 {
				t.Errorf("directory holds %d devices after rejection, want 0", len(all))
			}
			if len(n.types()) != 0 {
				t.Errorf("notified %v after rejection", n.types())
			}
		})
	}

	t.Run("directory failure is wrapped", func(t *testing.T) {
		boom := errors.New("disk full")
		mgr := NewManager(&failingDirectory{MemoryRepository: NewMemoryRepository(), insertErr: boom})

		_, err := mgr.Create(ctx, "Phone", "Samsung", nil)
		if !errors.Is(err, boom) {
			t.Errorf("Create() error = %v, want wrapped %v", err, boom)
		}
	})
}

func TestManager_Get(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	_, err := mgr.Get(context.Background(), "missing")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Get() error = %v, want ErrDeviceNotFound", err)
	}
}

func TestManager_List(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t)

	seed := []struct{ name, brand, state string }{
		{"A", "Samsung", "AVAILABLE"},
		{"B", "Apple", "IN_USE"},
		{"C", "Samsung", "IN_USE"},
	}
	for _, s := range seed {
		if _, err := mgr.Create(ctx, s.name, s.brand, strPtr(s.state)); err != nil {
			t.Fatalf("Create(%s) error = %v", s.name, err)
		}
	}

	tests := []struct {
		name    string
		filter  Filter
		want    []string
		wantErr error
	}{
		{"no filter", Filter{}, []string{"A", "B", "C"}, nil},
		{"by brand", Filter{Brand: strPtr("Samsung")}, []string{"A", "C"}, nil},
		{"by state lower case", Filter{State: strPtr("in_use")}, []string{"B", "C"}, nil},
		{"brand wins over state", Filter{Brand: strPtr("Apple"), State: strPtr("AVAILABLE")}, []string{"B"}, nil},
		{"invalid state", Filter{State: strPtr("BROKEN")}, nil, ErrInvalidState},
		{"no matches", Filter{Brand: strPtr("Nokia")}, []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mgr.List(ctx, tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("List() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List() returned %d devices, want %d", len(got), len(tt.want))
			}
			for i, d := range got {
				if d.Name != tt.want[i] {
					t.Errorf("List()[%d].Name = %q, want %q", i, d.Name, tt.want[i])
				}
			}
		})
	}
}

func TestManager_Update(t *testing.T) { //nolint:gocognit // covers every guard outcome
	ctx := context.Background()

	t.Run("in use rename is rejected and storage unchanged", func(t *testing.T) {
		mgr, repo, n := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", strPtr("IN_USE"))

		_, err := mgr.Update(ctx, d.ID, Changes{Name: strPtr("Phone Y")})
		if !errors.Is(err, ErrFieldLockedWhileInUse) {
			t.Fatalf("Update() error = %v, want ErrFieldLockedWhileInUse", err)
		}

		stored, _ := repo.Get(ctx, d.ID)
		if *stored != *d {
			t.Errorf("stored = %+v, want unchanged %+v", stored, d)
		}
		if got := n.types(); len(got) != 1 {
			t.Errorf("notifications = %v, want only [created]", got)
		}
	})

	t.Run("in use state change succeeds", func(t *testing.T) {
		mgr, repo, n := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", strPtr("IN_USE"))

		got, err := mgr.Update(ctx, d.ID, Changes{State: strPtr("AVAILABLE")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.State != StateAvailable {
			t.Errorf("State = %q, want AVAILABLE", got.State)
		}
		stored, _ := repo.Get(ctx, d.ID)
		if stored.State != StateAvailable {
			t.Errorf("stored State = %q, want AVAILABLE", stored.State)
		}
		if !stored.CreatedAt.Equal(d.CreatedAt) {
			t.Errorf("CreatedAt changed: %v -> %v", d.CreatedAt, stored.CreatedAt)
		}
		if got := n.types(); len(got) != 2 || got[1] != ChangeUpdated {
			t.Errorf("notifications = %v, want [created updated]", got)
		}
	})

	t.Run("partial update leaves absent fields", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", nil)

		got, err := mgr.Update(ctx, d.ID, Changes{Brand: strPtr("Apple")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.Name != "Phone X" || got.Brand != "Apple" || got.State != StateAvailable {
			t.Errorf("got %+v, want Phone X/Apple/AVAILABLE", got)
		}
	})

	t.Run("empty update is idempotent", func(t *testing.T) {
		mgr, repo, _ := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", nil)

		for i := 0; i < 2; i++ {
			if _, err := mgr.Update(ctx, d.ID, Changes{}); err != nil {
				t.Fatalf("Update() #%d error = %v", i, err)
			}
		}
		stored, _ := repo.Get(ctx, d.ID)
		if *stored != *d {
			t.Errorf("stored = %+v, want %+v", stored, d)
		}
	})

	t.Run("missing device", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)

		_, err := mgr.Update(ctx, "missing", Changes{State: strPtr("INACTIVE")})
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Update() error = %v, want ErrDeviceNotFound", err)
		}
	})

	t.Run("invalid state", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", nil)

		_, err := mgr.Update(ctx, d.ID, Changes{State: strPtr("LOST")})
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("Update() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("directory failure is wrapped", func(t *testing.T) {
		boom := errors.New("locked")
		dir := &failingDirectory{MemoryRepository: NewMemoryRepository()}
		mgr := NewManager(dir)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", nil)
		dir.replaceErr = boom

		_, err := mgr.Update(ctx, d.ID, Changes{State: strPtr("INACTIVE")})
		if !errors.Is(err, boom) {
			t.Errorf("Update() error = %v, want wrapped %v", err, boom)
		}
	})
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("in use is blocked", func(t *testing.T) {
		mgr, repo, _ := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", strPtr("IN_USE"))

		err := mgr.Delete(ctx, d.ID)
		if !errors.Is(err, ErrDeletionBlockedWhileInUse) {
			t.Fatalf("Delete() error = %v, want ErrDeletionBlockedWhileInUse", err)
		}
		if _, err := repo.Get(ctx, d.ID); err != nil {
			t.Errorf("device removed despite rejection: %v", err)
		}
	})

	t.Run("inactive is removed", func(t *testing.T) {
		mgr, repo, n := newTestManager(t)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", strPtr("INACTIVE"))

		if err := mgr.Delete(ctx, d.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.Get(ctx, d.ID); !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrDeviceNotFound", err)
		}
		if got := n.types(); len(got) != 2 || got[1] != ChangeDeleted {
			t.Errorf("notifications = %v, want [created deleted]", got)
		}
	})

	t.Run("missing device", func(t *testing.T) {
		mgr, _, _ := newTestManager(t)

		if err := mgr.Delete(ctx, "missing"); !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Delete() error = %v, want ErrDeviceNotFound", err)
		}
	})

	t.Run("directory failure does not notify", func(t *testing.T) {
		boom := errors.New("io")
		dir := &failingDirectory{MemoryRepository: NewMemoryRepository()}
		mgr := NewManager(dir)
		n := &recordingNotifier{}
		mgr.SetNotifier(n)
		d, _ := mgr.Create(ctx, "Phone X", "Samsung", nil)
		dir.removeErr = boom

		if err := mgr.Delete(ctx, d.ID); !errors.Is(err, boom) {
			t.Errorf("Delete() error = %v, want wrapped %v", err, boom)
		}
		if got := n.types(); len(got) != 1 {
			t.Errorf("notifications = %v, want only [created]", got)
		}
	})
}

func TestManager_Stats(t *testing.T) {
	ctx := context.Background()
	mgr, _, _ := newTestManager(t)

	for _, s := range []string{"AVAILABLE", "IN_USE", "IN_USE"} {
		if _, err := mgr.Create(ctx, "Phone", "Samsung", strPtr(s)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := mgr.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	want := map[DeviceState]int{StateAvailable: 1, StateInUse: 2, StateInactive: 0}
	for s, n := range want {
		got, ok := stats.ByState[s]
		if !ok || got != n {
			t.Errorf("ByState[%s] = %d (present %v), want %d", s, got, ok, n)
		}
	}
}

func TestMemoryRepository_RemoveKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var ids []string
	for _, name := range []string{"a", "b", "c", "d"} {
		d, err := repo.Insert(ctx, testDevice(name, "x", StateAvailable))
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		ids = append(ids, d.ID)
	}

	if err := repo.Remove(ctx, &Device{ID: ids[1]}); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	all, _ := repo.ListAll(ctx)
	want := []string{"a", "c", "d"}
	for i, d := range all {
		if d.Name != want[i] {
			t.Errorf("ListAll()[%d] = %q, want %q", i, d.Name, want[i])
		}
	}
	// Index must follow the shifted positions.
	got, err := repo.Get(ctx, ids[3])
	if err != nil || got.Name != "d" {
		t.Errorf("Get(d) = %+v, %v; want d", got, err)
	}
}
