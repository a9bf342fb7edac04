package device

import (
	"fmt"
	"strings"
	"time"
)

// Device is a single inventory record.
// This matches the database schema in migrations/20260301_120000_devices.up.sql.
type Device struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Brand string      `json:"brand"`
	State DeviceState `json:"state"`

	// CreatedAt is set once on insert and never rewritten.
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy of the device. Device holds no reference types so a
// value copy is sufficient.
func (d *Device) Clone() *Device {
	if d == nil {
		return nil
	}
	cpy := *d
	return &cpy
}

// DeviceState is the lifecycle state of a device.
type DeviceState string

// DeviceState constants.
const (
	StateAvailable DeviceState = "AVAILABLE"
	StateInUse     DeviceState = "IN_USE"
	StateInactive  DeviceState = "INACTIVE"
)

// AllStates returns all valid lifecycle states in declaration order.
func AllStates() []DeviceState {
	return []DeviceState{StateAvailable, StateInUse, StateInactive}
}

// IsValid reports whether s is a member of the state enumeration.
func (s DeviceState) IsValid() bool {
	switch s {
	case StateAvailable, StateInUse, StateInactive:
		return true
	}
	return false
}

// ParseState converts free text into a DeviceState. Matching ignores case
// and surrounding whitespace; anything else is rejected with ErrInvalidState.
func ParseState(text string) (DeviceState, error) {
	s := DeviceState(strings.ToUpper(strings.TrimSpace(text)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, text)
	}
	return s, nil
}

// Changes is a partial update. A nil field is absent and leaves the stored
// value untouched; a non-nil field is present even when its value equals
// the stored one.
type Changes struct {
	Name  *string `json:"name,omitempty"`
	Brand *string `json:"brand,omitempty"`
	State *string `json:"state,omitempty"`
}

// IsEmpty reports whether no field is present.
func (c Changes) IsEmpty() bool {
	return c.Name == nil && c.Brand == nil && c.State == nil
}

// touchesIdentity reports whether name or brand is present.
func (c Changes) touchesIdentity() bool {
	return c.Name != nil || c.Brand != nil
}

// Filter selects which devices List returns. When both Brand and State are
// set, Brand takes precedence.
type Filter struct {
	Brand *string
	State *string
}

// Stats summarises the inventory.
type Stats struct {
	Total   int                 `json:"total"`
	ByState map[DeviceState]int `json:"by_state"`
}
