// Package staffrepo provides data transfer objects and mapping functions for
// the staff directory: employees with their role assignments and system
// accounts, plus the role and department catalog.
package staffrepo

import (
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
// Account columns are empty strings until a system account is provisioned.
type EmployeeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string
	Phone        string
	Username     string
	Email        string
	PasswordHash string
	Available    bool                `gorm:"index"`
	Roles        []RoleAssignmentDTO `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// RoleAssignmentDTO represents one employee-to-role link. At most one row per
// employee has Principal set, enforced by the aggregate before writes.
type RoleAssignmentDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	RoleID     uuid.UUID `gorm:"type:uuid;index"`
	Principal  bool
}

// TableName specifies the database table name for role assignment entities.
func (RoleAssignmentDTO) TableName() string {
	return "employee_roles"
}

// RoleDTO represents the database structure for persisting roles.
type RoleDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	DepartmentID         uuid.UUID `gorm:"type:uuid;index"`
	RequiresSystemAccess bool
}

// TableName specifies the database table name for role entities.
func (RoleDTO) TableName() string {
	return "roles"
}

// DepartmentDTO represents the database structure for persisting departments.
type DepartmentDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for department entities.
func (DepartmentDTO) TableName() string {
	return "departments"
}

// employeeFromDomain converts an employee domain aggregate to its database
// representation.
func employeeFromDomain(aggregate *staff.Employee) EmployeeDTO {
	roles := make([]RoleAssignmentDTO, 0, len(aggregate.Roles()))
	for _, assignment := range aggregate.Roles() {
		roles = append(roles, RoleAssignmentDTO{
			EmployeeID: aggregate.ID().Bytes(),
			RoleID:     assignment.RoleID().Bytes(),
			Principal:  assignment.IsPrincipal(),
		})
	}

	account := aggregate.Account()
	return EmployeeDTO{
		ID:           aggregate.ID().Bytes(),
		FullName:     aggregate.FullName(),
		Phone:        aggregate.Phone(),
		Username:     account.Username(),
		Email:        account.Email(),
		PasswordHash: account.PasswordHash(),
		Available:    aggregate.IsAvailable(),
		Roles:        roles,
	}
}

// employeeToDomain converts a database DTO to an employee domain aggregate.
func employeeToDomain(dto EmployeeDTO) (*staff.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]staff.RoleAssignment, 0, len(dto.Roles))
	for _, roleDTO := range dto.Roles {
		roleID, roleErr := kernel.UUIDFromBytes(roleDTO.RoleID[:])
		if roleErr != nil {
			return nil, roleErr
		}

		assignment, roleErr := staff.NewRoleAssignment(roleID, roleDTO.Principal)
		if roleErr != nil {
			return nil, roleErr
		}

		roles = append(roles, assignment)
	}

	var account staff.Account
	if dto.Username != "" {
		account, err = staff.NewAccount(dto.Username, dto.Email, dto.PasswordHash)
		if err != nil {
			return nil, err
		}
	}

	return staff.RestoreEmployee(id, dto.FullName, dto.Phone, account, dto.Available, roles)
}

// roleFromDomain converts a role to its database representation.
func roleFromDomain(role *staff.Role) RoleDTO {
	return RoleDTO{
		ID:                   role.ID().Bytes(),
		Name:                 role.Name(),
		DepartmentID:         role.DepartmentID().Bytes(),
		RequiresSystemAccess: role.RequiresSystemAccess(),
	}
}

// roleToDomain converts a database DTO to a role.
func roleToDomain(dto RoleDTO) (*staff.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	departmentID, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewRole(id, dto.Name, departmentID, dto.RequiresSystemAccess)
}

// departmentFromDomain converts a department to its database representation.
func departmentFromDomain(department *staff.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID().Bytes(),
		Name: department.Name(),
	}
}

// departmentToDomain converts a database DTO to a department.
func departmentToDomain(dto DepartmentDTO) (*staff.Department, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewDepartment(id, dto.Name)
}
