package postgres

import (
	"errors"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	if err := r.db.Create(emp).Error; err != nil {
		return internal.NewPersistenceError("failed to persist employee", err)
	}
	return nil
}

func (r *EmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewPersistenceError("failed to read employee", err)
	}
	return &emp, nil
}

// GetAll returns every employee ordered newest-first by creation time.
func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("created_at DESC").Find(&employees).Error
	if err != nil {
		return nil, internal.NewPersistenceError("failed to list employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	emp.UpdatedAt = time.Now()
	result := r.db.Model(&employee.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]interface{}{
			"name":       emp.Name,
			"email":      emp.Email,
			"role":       emp.Role,
			"department": emp.Department,
			"account_id": emp.AccountID,
			"updated_at": emp.UpdatedAt,
		})
	if result.Error != nil {
		return internal.NewPersistenceError("failed to update employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&employee.Employee{})
	if result.Error != nil {
		return internal.NewPersistenceError("failed to delete employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) FindByEmail(email string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewPersistenceError("failed to find employee by email", err)
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByAccountID(accountID string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("account_id = ?", accountID).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewPersistenceError("failed to find employee by account", err)
	}
	return &emp, nil
}
