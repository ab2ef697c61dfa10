package commands

import (
	"context"
	"errors"
	"strings"

	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrRoleNotFound = errors.New("role not found")

// RegisterEmployeeCommandHandler handles employee registration. When the
// principal role requires system access it provisions an account with a
// generated username and a bcrypt-hashed temporary password.
type RegisterEmployeeCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterEmployeeCommandHandler creates a handler for employee registration.
func NewRegisterEmployeeCommandHandler(uowFactory StaffUoWFactory) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns ErrRoleNotFound when the principal or any extra role is unknown.
func (h RegisterEmployeeCommandHandler) Handle(ctx context.Context, cmd RegisterEmployeeCommand) error {
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

	roleRepo := uow.RoleRepository()

	principalRole, err := roleRepo.GetRole(ctx, cmd.PrincipalRoleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}

	employee, err := staff.NewEmployee(cmd.EmployeeID(), cmd.FullName(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = employee.AssignRole(principalRole.ID(), true); err != nil {
		return err
	}

	for _, roleID := range cmd.ExtraRoleIDs() {
		if _, err = roleRepo.GetRole(ctx, roleID); errors.Is(err, errs.ErrObjectNotFound) {
			return ErrRoleNotFound
		} else if err != nil {
			return err
		}

		if err = employee.AssignRole(roleID, false); err != nil {
			return err
		}
	}

	if principalRole.RequiresSystemAccess() {
		account, err := provisionAccount(cmd.FullName(), cmd.Email())
		if err != nil {
			return err
		}
		if err = employee.AttachAccount(account); err != nil {
			return err
		}
	}

	if err = uow.EmployeeRepository().Add(ctx, employee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// provisionAccount builds credentials for a new employee: first initial plus
// last name for the username and a random temporary password the employee
// must change on first login.
func provisionAccount(fullName, email string) (staff.Account, error) {
	tempPassword := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return staff.Account{}, err
	}

	return staff.NewAccount(generateUsername(fullName), email, string(hash))
}

func generateUsername(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return parts[0][:1] + parts[len(parts)-1]
}
