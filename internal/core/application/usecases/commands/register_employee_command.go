package commands

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/guard"
)

var (
	ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
		"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
	)
	ErrEmployeeNameIsRequired  = errors.New("employee full name is required")
	ErrEmployeeEmailIsRequired = errors.New("employee email is required")
)

// RegisterEmployeeCommand represents a request to add an employee to the
// directory with an initial principal role.
type RegisterEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID      kernel.UUID
	fullName        string
	phone           string
	email           string
	principalRoleID kernel.UUID
	extraRoleIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterEmployeeCommand creates a command to register an employee.
// The email is required because account provisioning may need it; whether an
// account is actually created depends on the principal role.
func NewRegisterEmployeeCommand(
	employeeID kernel.UUID,
	fullName, phone, email string,
	principalRoleID kernel.UUID,
	extraRoleIDs []kernel.UUID,
) (RegisterEmployeeCommand, error) {
	cmd := RegisterEmployeeCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPrincipalRoleID(principalRoleID),
		cmd.setExtraRoleIDs(extraRoleIDs),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier for the new employee.
func (c RegisterEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// FullName returns the employee's display name.
func (c RegisterEmployeeCommand) FullName() string {
	return c.fullName
}

// Phone returns the contact phone, possibly empty.
func (c RegisterEmployeeCommand) Phone() string {
	return c.phone
}

// Email returns the contact email.
func (c RegisterEmployeeCommand) Email() string {
	return c.email
}

// PrincipalRoleID returns the initial principal role.
func (c RegisterEmployeeCommand) PrincipalRoleID() kernel.UUID {
	return c.principalRoleID
}

// ExtraRoleIDs returns additional non-principal roles.
func (c RegisterEmployeeCommand) ExtraRoleIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.extraRoleIDs))
	copy(out, c.extraRoleIDs)
	return out
}

func (c *RegisterEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *RegisterEmployeeCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrEmployeeNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterEmployeeCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmployeeEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterEmployeeCommand) setPrincipalRoleID(principalRoleID kernel.UUID) error {
	if err := principalRoleID.Validate(); err != nil {
		return err
	}

	c.principalRoleID = principalRoleID
	return nil
}

func (c *RegisterEmployeeCommand) setExtraRoleIDs(extraRoleIDs []kernel.UUID) error {
	for _, id := range extraRoleIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.extraRoleIDs = make([]kernel.UUID, len(extraRoleIDs))
	copy(c.extraRoleIDs, extraRoleIDs)
	return nil
}
