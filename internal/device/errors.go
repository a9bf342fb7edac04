package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when a device ID does not exist.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrDeviceExists is returned when inserting a device with an ID that already exists.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrInvalidInput is returned when a required field is blank or too long.
	ErrInvalidInput = errors.New("device: invalid input")

	// ErrInvalidState is returned when a state value is not a member of the enumeration.
	ErrInvalidState = errors.New("device: invalid state")

	// ErrFieldLockedWhileInUse is returned when an update to an IN_USE device
	// carries a name or brand.
	ErrFieldLockedWhileInUse = errors.New("device: name and brand are locked while in use")

	// ErrDeletionBlockedWhileInUse is returned when deleting an IN_USE device.
	ErrDeletionBlockedWhileInUse = errors.New("device: cannot delete a device in use")
)
