package commands

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var ErrSetPrincipalRoleCommandIsNotConstructed = errors.New(
	"SetPrincipalRoleCommand must be created via NewSetPrincipalRoleCommand constructor",
)

// SetPrincipalRoleCommand represents a request to make a role the employee's
// principal role.
type SetPrincipalRoleCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	roleID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetPrincipalRoleCommand creates a command to change an employee's
// principal role.
func NewSetPrincipalRoleCommand(employeeID, roleID kernel.UUID) (SetPrincipalRoleCommand, error) {
	cmd := SetPrincipalRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setRoleID(roleID),
	); err != nil {
		return SetPrincipalRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPrincipalRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetPrincipalRoleCommandIsNotConstructed)
}

// EmployeeID returns the employee whose principal role changes.
func (c SetPrincipalRoleCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// RoleID returns the role to promote.
func (c SetPrincipalRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

func (c *SetPrincipalRoleCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *SetPrincipalRoleCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}
