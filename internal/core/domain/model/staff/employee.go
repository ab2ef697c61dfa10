package staff

import (
	"errors"
	"strings"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrFullNameIsRequired is returned when creating an employee without a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrEmployeeIsNotConstructed is returned when using an improperly initialized Employee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee")
	// ErrMultiplePrincipalRoles is returned when a second principal role would be assigned.
	ErrMultiplePrincipalRoles = errors.New("employee already has a principal role")
	// ErrRoleAlreadyAssigned is returned when assigning a role the employee already holds.
	ErrRoleAlreadyAssigned = errors.New("role is already assigned to employee")
	// ErrRoleNotAssigned is returned when operating on a role the employee does not hold.
	ErrRoleNotAssigned = errors.New("role is not assigned to employee")
)

// RoleAssignment links an employee to a role. At most one assignment per
// employee carries the principal flag.
type RoleAssignment struct {
	roleID    kernel.UUID
	principal bool
}

// NewRoleAssignment builds an assignment for restoration from persistence.
func NewRoleAssignment(roleID kernel.UUID, principal bool) (RoleAssignment, error) {
	if err := roleID.Validate(); err != nil {
		return RoleAssignment{}, errs.NewValueIsRequiredErrorWithCause("role id", err)
	}
	return RoleAssignment{roleID: roleID, principal: principal}, nil
}

// RoleID returns the assigned role.
func (ra RoleAssignment) RoleID() kernel.UUID {
	return ra.roleID
}

// IsPrincipal reports whether this is the employee's principal role.
func (ra RoleAssignment) IsPrincipal() bool {
	return ra.principal
}

// Employee is the aggregate root of the staff directory. It owns its role
// assignments and optional access account, and carries the availability flag
// the delivery scheduler uses to pick couriers.
type Employee struct {
	id        kernel.UUID
	fullName  string
	phone     string
	account   Account
	available bool
	roles     []RoleAssignment
	guard     guard.ConstructorGuard
}

// NewEmployee creates an available employee with no roles and no account.
func NewEmployee(id kernel.UUID, fullName, phone string) (*Employee, error) {
	e := &Employee{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setFullName(fullName),
	); err != nil {
		return nil, err
	}

	e.phone = phone
	return e, nil
}

// RestoreEmployee rebuilds an employee from persistence.
func RestoreEmployee(
	id kernel.UUID,
	fullName, phone string,
	account Account,
	available bool,
	roles []RoleAssignment,
) (*Employee, error) {
	e, err := NewEmployee(id, fullName, phone)
	if err != nil {
		return nil, err
	}

	if err := e.setRoles(roles); err != nil {
		return nil, err
	}

	e.account = account
	e.available = available
	return e, nil
}

// Validate ensures the employee came from a constructor.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the employee identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.fullName
}

// Phone returns the contact phone, possibly empty.
func (e *Employee) Phone() string {
	return e.phone
}

// Account returns the access credentials; check IsSet before use.
func (e *Employee) Account() Account {
	return e.account
}

// IsAvailable reports whether the employee can be dispatched on a delivery.
func (e *Employee) IsAvailable() bool {
	return e.available
}

// Roles returns a copy of the role assignments.
func (e *Employee) Roles() []RoleAssignment {
	out := make([]RoleAssignment, len(e.roles))
	copy(out, e.roles)
	return out
}

// PrincipalRoleID returns the principal role, or nil when none is set.
func (e *Employee) PrincipalRoleID() *kernel.UUID {
	for _, ra := range e.roles {
		if ra.principal {
			id := ra.roleID
			return &id
		}
	}
	return nil
}

// HasRole reports whether the employee holds the given role.
func (e *Employee) HasRole(roleID kernel.UUID) bool {
	return e.findRole(roleID) >= 0
}

// AssignRole adds a role to the employee. Assigning as principal fails when
// a principal role already exists; use SetPrincipalRole to switch.
func (e *Employee) AssignRole(roleID kernel.UUID, principal bool) error {
	if err := roleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role id", err)
	}

	if e.findRole(roleID) >= 0 {
		return ErrRoleAlreadyAssigned
	}

	if principal && e.PrincipalRoleID() != nil {
		return ErrMultiplePrincipalRoles
	}

	e.roles = append(e.roles, RoleAssignment{roleID: roleID, principal: principal})
	return nil
}

// SetPrincipalRole makes the given role the employee's principal role,
// demoting the current principal first. The role must already be assigned.
// The operation is idempotent for the current principal.
func (e *Employee) SetPrincipalRole(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role id", err)
	}

	idx := e.findRole(roleID)
	if idx < 0 {
		return ErrRoleNotAssigned
	}

	for i := range e.roles {
		e.roles[i].principal = false
	}
	e.roles[idx].principal = true
	return nil
}

// RevokeRole removes a role assignment.
func (e *Employee) RevokeRole(roleID kernel.UUID) error {
	idx := e.findRole(roleID)
	if idx < 0 {
		return ErrRoleNotAssigned
	}

	e.roles = append(e.roles[:idx], e.roles[idx+1:]...)
	return nil
}

// AttachAccount sets the employee's access credentials.
func (e *Employee) AttachAccount(account Account) error {
	if !account.IsSet() {
		return errs.NewValueIsRequiredError("account")
	}
	e.account = account
	return nil
}

// MarkUnavailable takes the employee off the dispatch pool.
func (e *Employee) MarkUnavailable() {
	e.available = false
}

// MarkAvailable returns the employee to the dispatch pool.
func (e *Employee) MarkAvailable() {
	e.available = true
}

func (e *Employee) findRole(roleID kernel.UUID) int {
	for i, ra := range e.roles {
		if ra.roleID.IsEqual(roleID) {
			return i
		}
	}
	return -1
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	e.fullName = fullName
	return nil
}

func (e *Employee) setRoles(roles []RoleAssignment) error {
	principals := 0
	for _, ra := range roles {
		if err := ra.roleID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("role id", err)
		}
		if ra.principal {
			principals++
		}
	}
	if principals > 1 {
		return ErrMultiplePrincipalRoles
	}

	e.roles = make([]RoleAssignment, len(roles))
	copy(e.roles, roles)
	return nil
}
