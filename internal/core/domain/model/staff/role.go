package staff

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrRoleNameIsRequired is returned when creating a role without a name.
	ErrRoleNameIsRequired = errs.NewValueIsRequiredError("role name")
	// ErrRoleIsNotConstructed is returned when using an improperly initialized Role.
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole constructor")
)

// Role is a job function within a department. Roles that require system
// access trigger account provisioning when assigned as principal.
type Role struct {
	id                   kernel.UUID
	name                 string
	departmentID         kernel.UUID
	requiresSystemAccess bool
	guard                guard.ConstructorGuard
}

// NewRole creates a role belonging to a department.
func NewRole(id kernel.UUID, name string, departmentID kernel.UUID, requiresSystemAccess bool) (*Role, error) {
	r := &Role{
		requiresSystemAccess: requiresSystemAccess,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setDepartmentID(departmentID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the role came from the constructor.
func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// ID returns the role identifier.
func (r *Role) ID() kernel.UUID {
	return r.id
}

// Name returns the role name.
func (r *Role) Name() string {
	return r.name
}

// DepartmentID returns the department this role belongs to.
func (r *Role) DepartmentID() kernel.UUID {
	return r.departmentID
}

// RequiresSystemAccess reports whether holders of this role need an account.
func (r *Role) RequiresSystemAccess() bool {
	return r.requiresSystemAccess
}

func (r *Role) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Role) setName(name string) error {
	if name == "" {
		return ErrRoleNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Role) setDepartmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("department id", err)
	}
	r.departmentID = id
	return nil
}
