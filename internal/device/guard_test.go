package device

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    DeviceState
		wantErr bool
	}{
		{"AVAILABLE", StateAvailable, false},
		{"in_use", StateInUse, false},
		{"Inactive", StateInactive, false},
		{"  in_use ", StateInUse, false},
		{"", "", true},
		{"BROKEN", "", true},
		{"IN USE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Errorf("ParseState(%q) error = %v, want ErrInvalidState", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseState(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveCreateState(t *testing.T) {
	got, err := ResolveCreateState(nil)
	if err != nil || got != StateAvailable {
		t.Errorf("ResolveCreateState(nil) = %q, %v; want AVAILABLE", got, err)
	}

	got, err = ResolveCreateState(strPtr("inactive"))
	if err != nil || got != StateInactive {
		t.Errorf("ResolveCreateState(inactive) = %q, %v; want INACTIVE", got, err)
	}

	if _, err := ResolveCreateState(strPtr("BROKEN")); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ResolveCreateState(BROKEN) error = %v, want ErrInvalidState", err)
	}
}

func TestValidateUpdate(t *testing.T) { //nolint:gocognit // table-driven guard matrix
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	base := func(state DeviceState) Device {
		return Device{ID: "dev-1", Name: "Phone X", Brand: "Samsung", State: state, CreatedAt: created}
	}

	tests := []struct {
		name    string
		current Device
		changes Changes
		want    Device
		wantErr error
	}{
		{
			name:    "empty changes keep device",
			current: base(StateAvailable),
			changes: Changes{},
			want:    base(StateAvailable),
		},
		{
			name:    "rename while available",
			current: base(StateAvailable),
			changes: Changes{Name: strPtr("Phone Y")},
			want:    Device{ID: "dev-1", Name: "Phone Y", Brand: "Samsung", State: StateAvailable, CreatedAt: created},
		},
		{
			name:    "rename while inactive",
			current: base(StateInactive),
			changes: Changes{Brand: strPtr("Apple")},
			want:    Device{ID: "dev-1", Name: "Phone X", Brand: "Apple", State: StateInactive, CreatedAt: created},
		},
		{
			name:    "state only while in use",
			current: base(StateInUse),
			changes: Changes{State: strPtr("AVAILABLE")},
			want:    base(StateAvailable),
		},
		{
			name:    "name while in use",
			current: base(StateInUse),
			changes: Changes{Name: strPtr("Phone Y")},
			wantErr: ErrFieldLockedWhileInUse,
		},
		{
			name:    "unchanged brand while in use is still locked",
			current: base(StateInUse),
			changes: Changes{Brand: strPtr("Samsung")},
			wantErr: ErrFieldLockedWhileInUse,
		},
		{
			name:    "leaving in use does not unlock name in the same update",
			current: base(StateInUse),
			changes: Changes{Name: strPtr("Phone Y"), State: strPtr("AVAILABLE")},
			wantErr: ErrFieldLockedWhileInUse,
		},
		{
			name:    "entering in use with rename is allowed",
			current: base(StateAvailable),
			changes: Changes{Name: strPtr("Phone Y"), State: strPtr("IN_USE")},
			want:    Device{ID: "dev-1", Name: "Phone Y", Brand: "Samsung", State: StateInUse, CreatedAt: created},
		},
		{
			name:    "invalid state",
			current: base(StateAvailable),
			changes: Changes{State: strPtr("BROKEN")},
			wantErr: ErrInvalidState,
		},
		{
			name:    "blank name",
			current: base(StateAvailable),
			changes: Changes{Name: strPtr("   ")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "over-long brand",
			current: base(StateAvailable),
			changes: Changes{Brand: strPtr(strings.Repeat("b", maxBrandLength+1))},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.current
			got, err := ValidateUpdate(tt.current, tt.changes)

			if tt.current != before {
				t.Fatalf("ValidateUpdate mutated current: %+v", tt.current)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateUpdate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateUpdate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateUpdate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateDelete(t *testing.T) {
	for _, s := range AllStates() {
		t.Run(string(s), func(t *testing.T) {
			err := ValidateDelete(Device{ID: "dev-1", State: s})
			if s == StateInUse {
				if !errors.Is(err, ErrDeletionBlockedWhileInUse) {
					t.Errorf("ValidateDelete() error = %v, want ErrDeletionBlockedWhileInUse", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateDelete() error = %v, want nil", err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Phone X", false},
		{"empty", "", true},
		{"whitespace", " \t ", true},
		{"max length", strings.Repeat("n", maxNameLength), false},
		{"too long", strings.Repeat("n", maxNameLength+1), true},
		{"multibyte within limit", strings.Repeat("é", maxNameLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ValidateName() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
