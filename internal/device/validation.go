package device

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation constants.
const (
	maxNameLength  = 100
	maxBrandLength = 100
)

// ValidateName checks that a device name is non-blank and within length limits.
func ValidateName(name string) error {
	return validateLabel("name", name, maxNameLength)
}

// ValidateBrand checks that a brand is non-blank and within length limits.
func ValidateBrand(brand string) error {
	return validateLabel("brand", brand, maxBrandLength)
}

func validateLabel(field, value string, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s cannot be blank", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, maxLen)
	}
	return nil
}

// ValidateDevice checks a fully populated device before it is written.
func ValidateDevice(d *Device) error {
	if d == nil {
		return fmt.Errorf("%w: device is nil", ErrInvalidInput)
	}
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	if err := ValidateBrand(d.Brand); err != nil {
		return err
	}
	if !d.State.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, d.State)
	}
	return nil
}

// GenerateID creates a new unique identifier for a device.
func GenerateID() string {
	return uuid.New().String()
}
