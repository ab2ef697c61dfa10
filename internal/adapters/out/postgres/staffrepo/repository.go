package staffrepo

import (
	"context"
	"errors"

	"aquaflow/internal/adapters/out/postgres/pgerr"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee with their role assignments to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add employee", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing employee to the database. Role assignments are
// rewritten as a whole so the stored set always mirrors the aggregate.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"full_name":     dto.FullName,
			"phone":         dto.Phone,
			"username":      dto.Username,
			"email":         dto.Email,
			"password_hash": dto.PasswordHash,
			"available":     dto.Available,
		})
	if result.Error != nil {
		return pgerr.Translate("update employee", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Delete(&RoleAssignmentDTO{}, "employee_id = ?", dto.ID).Error; err != nil {
		return pgerr.Translate("update employee roles", err)
	}

	if len(dto.Roles) > 0 {
		if err := db.Create(&dto.Roles).Error; err != nil {
			return pgerr.Translate("update employee roles", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee with their role assignments by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return employeeToDomain(dto)
}

// GetFirstAvailableForUpdate retrieves an available employee and locks their
// row until the current transaction ends. SKIP LOCKED makes concurrent
// confirmations pick different couriers instead of queueing on the same row.
func (r *GormEmployeeRepository) GetFirstAvailableForUpdate(ctx context.Context) (*staff.Employee, error) {
	var dto EmployeeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("available = ?", true).
		Order("full_name").
		Preload("Roles").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", "first available")
		}
		return nil, pgerr.Translate("lock courier", err)
	}

	return employeeToDomain(dto)
}

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// AddRole saves a new role to the database.
func (r *GormRoleRepository) AddRole(ctx context.Context, role *staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	dto := roleFromDomain(role)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add role", err)
	}

	return nil
}

// GetRole retrieves a role by ID.
func (r *GormRoleRepository) GetRole(ctx context.Context, id kernel.UUID) (*staff.Role, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", id.String())
		}
		return nil, err
	}

	return roleToDomain(dto)
}

// AddDepartment saves a new department to the database.
func (r *GormRoleRepository) AddDepartment(ctx context.Context, department *staff.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	dto := departmentFromDomain(department)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add department", err)
	}

	return nil
}

// GetDepartment retrieves a department by ID.
func (r *GormRoleRepository) GetDepartment(ctx context.Context, id kernel.UUID) (*staff.Department, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("department", id.String())
		}
		return nil, err
	}

	return departmentToDomain(dto)
}
