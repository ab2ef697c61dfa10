package kernel

import (
	"strings"

	"aquaflow/internal/pkg/errs"
)

// ErrAddressIsRequired is returned when constructing an Address from a blank string.
var ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

// Address is a free-form street address used for order shipping and as the
// destination of travel-time estimates. It must be non-blank; the routing
// collaborator is responsible for geocoding it.
type Address struct {
	value string
}

// NewAddress creates an Address from a non-blank string. Surrounding
// whitespace is trimmed.
func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, ErrAddressIsRequired
	}
	return Address{value: trimmed}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual reports whether two addresses carry the same text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate returns ErrAddressIsRequired for the zero value.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsRequired
	}
	return nil
}
