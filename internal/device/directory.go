package device

import "context"

// Directory defines the persistence operations the Manager relies on.
// Implementations must be atomic per device ID and return list results in
// insertion order.
type Directory interface {
	// Insert stores a new device. If d.ID is empty the implementation
	// assigns one. The stored device is returned.
	Insert(ctx context.Context, d *Device) (*Device, error)

	// Get retrieves a device by its identifier.
	// Returns ErrDeviceNotFound if the device does not exist.
	Get(ctx context.Context, id string) (*Device, error)

	// ListAll retrieves every device.
	ListAll(ctx context.Context) ([]Device, error)

	// ListByBrand retrieves devices whose brand matches exactly.
	ListByBrand(ctx context.Context, brand string) ([]Device, error)

	// ListByState retrieves devices in the given state.
	ListByState(ctx context.Context, state DeviceState) ([]Device, error)

	// Replace overwrites name, brand and state of an existing device.
	// CreatedAt is never rewritten.
	// Returns ErrDeviceNotFound if the device does not exist.
	Replace(ctx context.Context, d *Device) (*Device, error)

	// Remove deletes a device.
	// Returns ErrDeviceNotFound if the device does not exist.
	Remove(ctx context.Context, d *Device) error
}
