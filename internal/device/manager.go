package device

import (
	"context"
	"fmt"
	"time"
)

// Logger defines the logging interface used by the Manager.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// ChangeType identifies a committed lifecycle change.
type ChangeType string

// ChangeType constants.
const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// Change describes a committed write, delivered to a Notifier.
type Change struct {
	Type   ChangeType `json:"type"`
	Device Device     `json:"device"`
	At     time.Time  `json:"at"`
}

// Notifier receives committed changes. It is only called after the
// Directory write has succeeded and its outcome never affects the operation.
type Notifier interface {
	DeviceChanged(ctx context.Context, change Change)
}

// Manager orchestrates device commands against a Directory.
//
// Every mutating path runs the transition guard before touching the
// Directory, so a rejected command leaves storage unchanged.
type Manager struct {
	dir      Directory
	logger   Logger
	notifier Notifier
	now      func() time.Time
}

// NewManager creates a manager backed by dir.
func NewManager(dir Directory) *Manager {
	return &Manager{
		dir:    dir,
		logger: noopLogger{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetLogger sets the logger for the manager.
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
}

// SetNotifier registers a receiver for committed changes. nil disables
// notification.
func (m *Manager) SetNotifier(n Notifier) {
	m.notifier = n
}

// Create validates and stores a new device. state is optional and defaults
// to AVAILABLE.
func (m *Manager) Create(ctx context.Context, name, brand string, state *string) (*Device, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateBrand(brand); err != nil {
		return nil, err
	}
	resolved, err := ResolveCreateState(state)
	if err != nil {
		return nil, err
	}

	d := &Device{
		Name:      name,
		Brand:     brand,
		State:     resolved,
		CreatedAt: m.now().Truncate(time.Second),
	}

	stored, err := m.dir.Insert(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}

	m.logger.Info("device created", "id", stored.ID, "name", stored.Name, "state", stored.State)
	m.notify(ctx, ChangeCreated, stored)
	return stored, nil
}

// Get retrieves a device by ID.
// Returns ErrDeviceNotFound if the device does not exist.
func (m *Manager) Get(ctx context.Context, id string) (*Device, error) {
	return m.dir.Get(ctx, id)
}

// List returns devices matching filter in insertion order. Brand takes
// precedence over State; an unparseable State fails before the Directory
// is queried.
func (m *Manager) List(ctx context.Context, filter Filter) ([]Device, error) {
	switch {
	case filter.Brand != nil:
		return m.dir.ListByBrand(ctx, *filter.Brand)
	case filter.State != nil:
		state, err := ParseState(*filter.State)
		if err != nil {
			return nil, err
		}
		return m.dir.ListByState(ctx, state)
	default:
		return m.dir.ListAll(ctx)
	}
}

// Update applies a partial change to an existing device.
func (m *Manager) Update(ctx context.Context, id string, changes Changes) (*Device, error) {
	current, err := m.dir.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := ValidateUpdate(*current, changes)
	if err != nil {
		m.logger.Debug("device update rejected", "id", id, "state", current.State, "error", err)
		return nil, err
	}

	stored, err := m.dir.Replace(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("updating device: %w", err)
	}

	m.logger.Info("device updated", "id", stored.ID, "state", stored.State)
	m.notify(ctx, ChangeUpdated, stored)
	return stored, nil
}

// Delete removes a device that is not in use.
func (m *Manager) Delete(ctx context.Context, id string) error {
	current, err := m.dir.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := ValidateDelete(*current); err != nil {
		m.logger.Debug("device delete rejected", "id", id, "error", err)
		return err
	}

	if err := m.dir.Remove(ctx, current); err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}

	m.logger.Info("device deleted", "id", id)
	m.notify(ctx, ChangeDeleted, current)
	return nil
}

// Stats returns the total device count and a count per state.
// Every state appears in ByState, including those with zero devices.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	devices, err := m.dir.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Total:   len(devices),
		ByState: make(map[DeviceState]int, len(AllStates())),
	}
	for _, s := range AllStates() {
		stats.ByState[s] = 0
	}
	for _, d := range devices {
		stats.ByState[d.State]++
	}
	return stats, nil
}

func (m *Manager) notify(ctx context.Context, t ChangeType, d *Device) {
	if m.notifier == nil {
		return
	}
	m.notifier.DeviceChanged(ctx, Change{Type: t, Device: *d, At: m.now()})
}
