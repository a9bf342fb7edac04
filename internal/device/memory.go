package device

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-process Directory. Devices are kept in a slice
// so list results follow insertion order; index maps IDs to positions.
//
// All methods are safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	devices []*Device
	index   map[string]int
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory directory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		index: make(map[string]int),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Insert stores a copy of d, assigning an ID and creation time if unset.
func (m *MemoryRepository) Insert(_ context.Context, d *Device) (*Device, error) {
	stored := d.Clone()
	if stored.ID == "" {
		stored.ID = GenerateID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = m.now().Truncate(time.Second)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[stored.ID]; ok {
		return nil, ErrDeviceExists
	}
	m.index[stored.ID] = len(m.devices)
	m.devices = append(m.devices, stored)

	return stored.Clone(), nil
}

// Get retrieves a copy of the device with the given ID.
func (m *MemoryRepository) Get(_ context.Context, id string) (*Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return m.devices[i].Clone(), nil
}

// ListAll retrieves all devices in insertion order.
func (m *MemoryRepository) ListAll(_ context.Context) ([]Device, error) {
	return m.filter(func(*Device) bool { return true }), nil
}

// ListByBrand retrieves devices with an exact brand match.
func (m *MemoryRepository) ListByBrand(_ context.Context, brand string) ([]Device, error) {
	return m.filter(func(d *Device) bool { return d.Brand == brand }), nil
}

// ListByState retrieves devices in the given state.
func (m *MemoryRepository) ListByState(_ context.Context, state DeviceState) ([]Device, error) {
	return m.filter(func(d *Device) bool { return d.State == state }), nil
}

// Replace overwrites name, brand and state. CreatedAt keeps its stored value.
func (m *MemoryRepository) Replace(_ context.Context, d *Device) (*Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[d.ID]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	stored := m.devices[i].Clone()
	stored.Name = d.Name
	stored.Brand = d.Brand
	stored.State = d.State
	m.devices[i] = stored

	return stored.Clone(), nil
}

// Remove deletes a device and compacts the ordering.
func (m *MemoryRepository) Remove(_ context.Context, d *Device) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[d.ID]
	if !ok {
		return ErrDeviceNotFound
	}
	m.devices = append(m.devices[:i], m.devices[i+1:]...)
	delete(m.index, d.ID)
	for j := i; j < len(m.devices); j++ {
		m.index[m.devices[j].ID] = j
	}
	return nil
}

func (m *MemoryRepository) filter(keep func(*Device) bool) []Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	devices := []Device{}
	for _, d := range m.devices {
		if keep(d) {
			devices = append(devices, *d)
		}
	}
	return devices
}
