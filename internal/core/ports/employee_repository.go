package ports

import (
	"context"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/staff"
)

// EmployeeRepository defines the persistence contract for the staff
// directory.
type EmployeeRepository interface {
	// Add persists a new employee with their role assignments.
	Add(ctx context.Context, aggregate *staff.Employee) error

	// Update persists changes to an existing employee, including role
	// assignments and availability.
	Update(ctx context.Context, aggregate *staff.Employee) error

	// Get retrieves an employee by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error)

	// GetFirstAvailableForUpdate retrieves an available employee and locks
	// their row for the duration of the current transaction, so two
	// concurrent confirmations cannot dispatch the same courier. Returns
	// errs.ObjectNotFoundError when nobody is available.
	GetFirstAvailableForUpdate(ctx context.Context) (*staff.Employee, error)
}

// RoleRepository defines the persistence contract for roles and departments.
type RoleRepository interface {
	// AddRole persists a new role.
	AddRole(ctx context.Context, role *staff.Role) error

	// GetRole retrieves a role by its unique identifier.
	GetRole(ctx context.Context, id kernel.UUID) (*staff.Role, error)

	// AddDepartment persists a new department.
	AddDepartment(ctx context.Context, department *staff.Department) error

	// GetDepartment retrieves a department by its unique identifier.
	GetDepartment(ctx context.Context, id kernel.UUID) (*staff.Department, error)
}
