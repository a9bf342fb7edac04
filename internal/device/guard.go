package device

import "fmt"

// ResolveCreateState returns the initial state for a new device.
// An absent state defaults to AVAILABLE.
func ResolveCreateState(requested *string) (DeviceState, error) {
	if requested == nil {
		return StateAvailable, nil
	}
	return ParseState(*requested)
}

// ValidateUpdate merges changes into a copy of current and returns it.
// current is never modified.
//
// While current is IN_USE any present name or brand is rejected, even one
// equal to the stored value. State may still change. ID and CreatedAt are
// carried over from current.
func ValidateUpdate(current Device, changes Changes) (Device, error) {
	next := current

	if changes.State != nil {
		state, err := ParseState(*changes.State)
		if err != nil {
			return current, err
		}
		next.State = state
	}

	if current.State == StateInUse && changes.touchesIdentity() {
		return current, fmt.Errorf("%w: device %s", ErrFieldLockedWhileInUse, current.ID)
	}

	if changes.Name != nil {
		if err := ValidateName(*changes.Name); err != nil {
			return current, err
		}
		next.Name = *changes.Name
	}
	if changes.Brand != nil {
		if err := ValidateBrand(*changes.Brand); err != nil {
			return current, err
		}
		next.Brand = *changes.Brand
	}

	return next, nil
}

// ValidateDelete rejects deletion of an IN_USE device.
func ValidateDelete(current Device) error {
	if current.State == StateInUse {
		return fmt.Errorf("%w: device %s", ErrDeletionBlockedWhileInUse, current.ID)
	}
	return nil
}
