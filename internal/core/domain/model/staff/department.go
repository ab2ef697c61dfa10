package staff

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrDepartmentNameIsRequired is returned when creating a department without a name.
	ErrDepartmentNameIsRequired = errs.NewValueIsRequiredError("department name")
	// ErrDepartmentIsNotConstructed is returned when using an improperly initialized Department.
	ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment constructor")
)

// Department is an organizational unit roles belong to.
type Department struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewDepartment creates a department with a non-empty name.
func NewDepartment(id kernel.UUID, name string) (*Department, error) {
	d := &Department{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the department came from the constructor.
func (d *Department) Validate() error {
	if d == nil {
		return ErrDepartmentIsNotConstructed
	}
	return d.guard.Validate(ErrDepartmentIsNotConstructed)
}

// ID returns the department identifier.
func (d *Department) ID() kernel.UUID {
	return d.id
}

// Name returns the department name.
func (d *Department) Name() string {
	return d.name
}

// Rename changes the department name.
func (d *Department) Rename(name string) error {
	return d.setName(name)
}

func (d *Department) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Department) setName(name string) error {
	if name == "" {
		return ErrDepartmentNameIsRequired
	}
	d.name = name
	return nil
}
