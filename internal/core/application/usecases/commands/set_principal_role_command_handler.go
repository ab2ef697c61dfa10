package commands

import (
	"context"
	"errors"

	"aquaflow/internal/pkg/errs"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// SetPrincipalRoleCommandHandler handles principal role changes. The demote
// of the old principal and the promote of the new one happen on the loaded
// aggregate and persist in a single transaction, so the at-most-one rule
// never breaks mid-flight. Promoting the current principal again is a no-op.
type SetPrincipalRoleCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewSetPrincipalRoleCommandHandler creates a handler for principal role changes.
func NewSetPrincipalRoleCommandHandler(uowFactory StaffUoWFactory) SetPrincipalRoleCommandHandler {
	return SetPrincipalRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the principal role change.
// Assigns the role first when the employee does not hold it yet. Returns
// ErrEmployeeNotFound and ErrRoleNotFound for unknown identifiers.
func (h SetPrincipalRoleCommandHandler) Handle(ctx context.Context, cmd SetPrincipalRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()

	employee, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrEmployeeNotFound
	}
	if err != nil {
		return err
	}

	if _, err = uow.RoleRepository().GetRole(ctx, cmd.RoleID()); errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRoleNotFound
	} else if err != nil {
		return err
	}

	if !employee.HasRole(cmd.RoleID()) {
		if err = employee.AssignRole(cmd.RoleID(), false); err != nil {
			return err
		}
	}

	if err = employee.SetPrincipalRole(cmd.RoleID()); err != nil {
		return err
	}

	if err = employeeRepo.Update(ctx, employee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
